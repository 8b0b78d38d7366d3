// Package engine implements the moderation decision engine: one pass over
// the request's text signals with two terminal outcomes, approved or
// rejected. The engine is pure and deterministic (no I/O, no clock, no
// randomness), so identical requests always produce identical results, and
// it never panics or errors past its public boundary.
package engine

import (
	"strings"

	moderation "github.com/gospelwave/moderation"
	"github.com/gospelwave/moderation/keyword"
	"github.com/gospelwave/moderation/language"
)

// Config holds the heuristic constants of the confidence synthesis. They
// are configuration, not contract: callers should rely on the ordering and
// threshold-crossing behavior they produce, not the literals.
type Config struct {
	// GospelWeight is added when the assembled text contains a gospel keyword.
	GospelWeight float64

	// LanguageWeight scales the detected-language confidence contribution.
	LanguageWeight float64

	// TranscriptWeight is added when a usable transcript drove the decision.
	TranscriptWeight float64

	// TitleWeight is added when the title alone contains a gospel keyword,
	// rewarding explicit labeling even when the transcript is noisy.
	TitleWeight float64

	// ApprovalThreshold is the synthesized confidence above which content
	// is approved without a direct gospel-keyword hit.
	ApprovalThreshold float64

	// ProhibitedConfidence is the fixed low confidence reported when the
	// prohibited-term gate fires.
	ProhibitedConfidence float64

	// MinTranscriptChars is the minimal transcript length (in runes) below
	// which the engine falls back to title plus description. Short musical
	// clips legitimately have no spoken words; rejecting them for lacking
	// a transcript would be a false negative.
	MinTranscriptChars int
}

// DefaultConfig returns the default decision constants.
func DefaultConfig() Config {
	return Config{
		GospelWeight:         0.5,
		LanguageWeight:       0.2,
		TranscriptWeight:     0.1,
		TitleWeight:          0.2,
		ApprovalThreshold:    0.5,
		ProhibitedConfidence: 0.1,
		MinTranscriptChars:   3,
	}
}

// Engine folds language detection and keyword scanning into an approval
// decision. Safe for concurrent use; each Moderate call is independent.
type Engine struct {
	detector *language.Detector
	scanner  *keyword.Scanner
	config   Config
}

// New creates an engine over the given registry with default configuration.
func New(registry *language.Registry) *Engine {
	return NewWithConfig(registry, DefaultConfig())
}

// NewWithConfig creates an engine with explicit decision constants.
func NewWithConfig(registry *language.Registry, config Config) *Engine {
	return &Engine{
		detector: language.NewDetector(registry),
		scanner:  keyword.NewScanner(registry),
		config:   config,
	}
}

// Moderate runs the fixed decision sequence for one upload request. It is
// a total function: malformed input is coerced to a safe rejection
// carrying FlagInvalidInput rather than an error, because this call sits
// inline in a user-facing upload flow.
func (e *Engine) Moderate(req moderation.Request) (result moderation.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = invalidResult()
		}
	}()

	if err := validate(req); err != nil {
		return invalidResult()
	}

	text, usedTranscript := e.assembleText(req)

	var flags []moderation.Flag

	// Prohibited gate: takes precedence over any gospel signal, no further
	// scoring is performed after a hit.
	if e.scanner.ContainsProhibitedTerms(text) {
		flags = append(flags, moderation.FlagInappropriateContent)
		if !usedTranscript {
			flags = append(flags, moderation.FlagInsufficientTranscript)
		}
		return moderation.Result{
			Approved:   false,
			Confidence: clamp01(e.config.ProhibitedConfidence),
			Flags:      flags,
		}
	}

	gospelHit := e.scanner.ContainsGospelKeywords(text)
	detection := e.detector.Detect(text)

	confidence := 0.0
	if gospelHit {
		confidence += e.config.GospelWeight
	}
	if detection.Code != language.CodeUnknown {
		confidence += e.config.LanguageWeight * detection.Confidence
	}
	if usedTranscript {
		confidence += e.config.TranscriptWeight
	}
	if e.scanner.ContainsGospelKeywords(req.Title) {
		confidence += e.config.TitleWeight
	}
	confidence = clamp01(confidence)

	approved := gospelHit || confidence > e.config.ApprovalThreshold
	if !approved {
		flags = append(flags, moderation.FlagNonGospelContent)
	}
	if !usedTranscript {
		flags = append(flags, moderation.FlagInsufficientTranscript)
	}

	return moderation.Result{
		Approved:   approved,
		Confidence: confidence,
		Flags:      flags,
		DetectedLanguage: &moderation.DetectedLanguage{
			Code:       detection.Code,
			Name:       detection.Name,
			Confidence: detection.Confidence,
		},
	}
}

// assembleText picks the text the decision runs on: the transcript when it
// carries at least a minimal amount of content, otherwise title plus
// description. The second return value reports whether the transcript was
// used.
func (e *Engine) assembleText(req moderation.Request) (string, bool) {
	transcript := strings.TrimSpace(req.Transcript)
	if runeLen(transcript) >= e.config.MinTranscriptChars {
		return transcript, true
	}

	fallback := strings.TrimSpace(strings.TrimSpace(req.Title) + " " + strings.TrimSpace(req.Description))
	return fallback, false
}

// validate rejects structurally malformed requests. Empty text fields are
// valid, expected input (transcription may fail); only an unusable content
// type makes a request malformed.
func validate(req moderation.Request) error {
	if req.ContentType == "" {
		return moderation.NewInputError("content_type", "missing")
	}
	if !moderation.IsKnownContentType(req.ContentType) {
		return moderation.NewInputError("content_type", "unknown value "+string(req.ContentType))
	}
	return nil
}

func invalidResult() moderation.Result {
	return moderation.Result{
		Approved:   false,
		Confidence: 0,
		Flags:      []moderation.Flag{moderation.FlagInvalidInput},
	}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
