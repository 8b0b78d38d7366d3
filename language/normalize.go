package language

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases text, replaces punctuation with spaces, and
// collapses runs of whitespace. Diacritics are preserved (the detector
// scores on them); combining sequences are composed first so a decomposed
// "o + combining dot" survives as the single letter ọ. Normalize is
// idempotent, and the detector and keyword scanner share it so both treat
// text identically.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	composed := norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(composed))
	for _, ch := range composed {
		switch {
		case unicode.IsLetter(ch) || unicode.IsDigit(ch):
			b.WriteRune(unicode.ToLower(ch))
		case unicode.Is(unicode.Mn, ch):
			// Tone marks with no precomposed form (ẹ́, ọ̀) arrive as a base
			// letter plus a combining mark; the mark belongs to the word.
			b.WriteRune(ch)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize normalizes text and splits it into words.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}

// hookedFolds maps letters that carry no combining mark but are still
// commonly typed as their plain Latin base (Hausa hooked consonants).
var hookedFolds = map[rune]rune{
	'ɗ': 'd',
	'ɓ': 'b',
	'ƙ': 'k',
	'ƴ': 'y',
	'Ɗ': 'd',
	'Ɓ': 'b',
	'Ƙ': 'k',
	'Ƴ': 'y',
}

// StripDiacritics removes accent and tone marks from text, folding ọ to o,
// é to e, ɗ to d and so on. User-submitted text frequently omits
// diacritics, so keyword matching compares stripped forms.
func StripDiacritics(text string) string {
	if text == "" {
		return ""
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, text)
	if err != nil {
		stripped = text
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, ch := range stripped {
		if folded, ok := hookedFolds[ch]; ok {
			b.WriteRune(folded)
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
