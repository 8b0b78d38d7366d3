// Package language holds the static registry of supported languages and
// implements heuristic language detection over keyword and diacritic
// signatures. The registry is built once per process and never mutated
// afterward; detectors and scanners receive a reference to it rather than
// reading global state, so tests can substitute a minimal fixture.
package language

import (
	"sort"
	"sync"
)

// CodeUnknown is the sentinel code returned when no language signature
// matches with enough confidence.
const CodeUnknown = "unknown"

// NameUnknown is the display name paired with CodeUnknown.
const NameUnknown = "Unknown"

// Supported language codes.
const (
	CodeEnglish = "ENGLISH"
	CodeYoruba  = "YORUBA"
	CodeIgbo    = "IGBO"
	CodeHausa   = "HAUSA"
	CodePidgin  = "PIDGIN"
)

// Signature describes one supported language: its diacritic characters and
// the marker words strongly associated with it. Immutable once registered.
type Signature struct {
	Code             string
	Name             string
	DiacriticMarkers []rune
	MarkerWords      []string
}

// Registry is the immutable table of supported languages plus the curated
// gospel-keyword and prohibited-term dictionaries.
type Registry struct {
	order      []string // registry iteration order, English first
	sigs       map[string]Signature
	diacritics map[string]map[rune]bool
	markers    map[string]map[string]bool // normalized marker words
	stripped   map[string]map[string]bool // diacritic-stripped marker words
	gospel     map[string][]string
	prohibited []string
}

// New builds a registry from the given signatures and dictionaries.
// Marker words and keywords are normalized at build time so lookups during
// detection are plain set membership tests.
func New(sigs []Signature, gospel map[string][]string, prohibited []string) *Registry {
	r := &Registry{
		sigs:       make(map[string]Signature, len(sigs)),
		diacritics: make(map[string]map[rune]bool, len(sigs)),
		markers:    make(map[string]map[string]bool, len(sigs)),
		stripped:   make(map[string]map[string]bool, len(sigs)),
		gospel:     make(map[string][]string, len(gospel)),
		prohibited: append([]string(nil), prohibited...),
	}

	for _, sig := range sigs {
		if _, dup := r.sigs[sig.Code]; dup {
			continue
		}
		r.order = append(r.order, sig.Code)
		r.sigs[sig.Code] = sig

		dia := make(map[rune]bool, len(sig.DiacriticMarkers))
		for _, ch := range sig.DiacriticMarkers {
			dia[ch] = true
		}
		r.diacritics[sig.Code] = dia

		words := make(map[string]bool, len(sig.MarkerWords))
		bare := make(map[string]bool, len(sig.MarkerWords))
		for _, w := range sig.MarkerWords {
			norm := Normalize(w)
			if norm == "" {
				continue
			}
			words[norm] = true
			bare[StripDiacritics(norm)] = true
		}
		r.markers[sig.Code] = words
		r.stripped[sig.Code] = bare
	}

	for code, keywords := range gospel {
		if _, ok := r.sigs[code]; !ok {
			continue
		}
		r.gospel[code] = append([]string(nil), keywords...)
	}

	// English first, then alphabetical: detection iterates in this order,
	// which keeps results deterministic.
	sort.SliceStable(r.order, func(i, j int) bool {
		if r.order[i] == CodeEnglish {
			return true
		}
		if r.order[j] == CodeEnglish {
			return false
		}
		return r.order[i] < r.order[j]
	})

	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry of supported languages,
// built on first use from the curated tables in data.go.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New(defaultSignatures, defaultGospelKeywords, defaultProhibitedTerms)
	})
	return defaultRegistry
}

// Codes returns every registered language code, English first.
func (r *Registry) Codes() []string {
	return append([]string(nil), r.order...)
}

// IsSupported reports whether code is a registered language code.
func (r *Registry) IsSupported(code string) bool {
	_, ok := r.sigs[code]
	return ok
}

// Name returns the display name for a language code, or NameUnknown.
func (r *Registry) Name(code string) string {
	if sig, ok := r.sigs[code]; ok {
		return sig.Name
	}
	return NameUnknown
}

// Signature returns the signature registered for code.
func (r *Registry) Signature(code string) (Signature, bool) {
	sig, ok := r.sigs[code]
	return sig, ok
}

// GospelKeywords returns the curated devotional vocabulary for a language.
func (r *Registry) GospelKeywords(code string) []string {
	return append([]string(nil), r.gospel[code]...)
}

// ProhibitedTerms returns the flat, language-agnostic disallowed-term list.
func (r *Registry) ProhibitedTerms() []string {
	return append([]string(nil), r.prohibited...)
}

// isMarker reports whether a normalized token is a marker word for code,
// matching with or without diacritics.
func (r *Registry) isMarker(code, token string) bool {
	if r.markers[code][token] {
		return true
	}
	return r.stripped[code][StripDiacritics(token)]
}

// isDiacritic reports whether ch is a diacritic marker character for code.
func (r *Registry) isDiacritic(code string, ch rune) bool {
	return r.diacritics[code][ch]
}
