// Package keyword scans normalized text for curated vocabulary: the
// per-language gospel-keyword dictionaries and the flat prohibited-term
// list. Matching is whole-word, case-insensitive, and diacritic-tolerant.
package keyword

import (
	"strings"

	"github.com/gospelwave/moderation/language"
)

// Scanner answers whether a text contains gospel vocabulary or disallowed
// vocabulary. It precomputes stripped keyword forms from the registry at
// construction and is stateless afterward, so it is safe for concurrent
// use. Both scan functions are pure and accept raw or already-normalized
// text equivalently, because normalization is applied internally and is
// idempotent.
type Scanner struct {
	gospel     []string // stripped, space-padded keyword phrases
	prohibited []string
}

// NewScanner builds a scanner over the registry's dictionaries.
func NewScanner(registry *language.Registry) *Scanner {
	s := &Scanner{}

	for _, code := range registry.Codes() {
		for _, kw := range registry.GospelKeywords(code) {
			if padded, ok := padKeyword(kw); ok {
				s.gospel = append(s.gospel, padded)
			}
		}
	}
	for _, term := range registry.ProhibitedTerms() {
		if padded, ok := padKeyword(term); ok {
			s.prohibited = append(s.prohibited, padded)
		}
	}

	return s
}

// ContainsGospelKeywords reports whether text contains any gospel keyword
// of any supported language, with or without diacritics. It short-circuits
// on the first match; language ordering affects only speed, never the
// boolean result.
func (s *Scanner) ContainsGospelKeywords(text string) bool {
	return containsAny(text, s.gospel)
}

// ContainsProhibitedTerms reports whether text contains any disallowed
// term. Checked before any approval logic by the decision engine.
func (s *Scanner) ContainsProhibitedTerms(text string) bool {
	return containsAny(text, s.prohibited)
}

// containsAny performs whole-word matching of padded keyword phrases
// against the stripped, normalized form of text.
func containsAny(text string, padded []string) bool {
	haystack := foldText(text)
	if haystack == "" {
		return false
	}
	for _, needle := range padded {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// foldText normalizes text, strips diacritics, and pads it with spaces so
// that whole words (and multi-word phrases) match as substrings.
func foldText(text string) string {
	normalized := language.StripDiacritics(language.Normalize(text))
	if normalized == "" {
		return ""
	}
	return " " + normalized + " "
}

// padKeyword canonicalizes one dictionary entry into its padded stripped
// form. Both sides of a comparison are stripped identically, so a keyword
// with diacritics matches input without them and vice versa.
func padKeyword(kw string) (string, bool) {
	folded := foldText(kw)
	if folded == "" {
		return "", false
	}
	return folded, true
}
