// Package rule wraps the deterministic decision engine as a moderation
// provider, so the pipeline treats the local classifier and remote cloud
// screens uniformly.
package rule

import (
	"context"
	"time"

	moderation "github.com/gospelwave/moderation"
	"github.com/gospelwave/moderation/engine"
	"github.com/gospelwave/moderation/language"
	"github.com/gospelwave/moderation/providers"
	"github.com/gospelwave/moderation/violation"
)

// Name is the rule provider's registered name.
const Name = "rule"

// Provider implements the offline rule-based moderation provider.
type Provider struct {
	engine *engine.Engine
}

// New creates a rule provider over the default language registry.
func New() *Provider {
	return NewWithEngine(engine.New(language.Default()))
}

// NewWithEngine creates a rule provider over a custom engine, e.g. one
// built on a fixture registry or tuned decision constants.
func NewWithEngine(e *engine.Engine) *Provider {
	return &Provider{engine: e}
}

// Engine returns the underlying decision engine.
func (p *Provider) Engine() *engine.Engine {
	return p.engine
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return Name
}

// Capability returns the rule provider's capability: offline, unbounded
// text length.
func (p *Provider) Capability() providers.Capability {
	return providers.Capability{
		MaxTextLength: 0,
		Offline:       true,
	}
}

// Check runs the decision engine. It never returns an error: malformed
// input comes back as a safe rejection with FlagInvalidInput.
func (p *Provider) Check(ctx context.Context, req providers.CheckRequest) (moderation.ReviewResult, error) {
	result := p.engine.Moderate(req.Request)

	review := moderation.ReviewResult{
		Decision:   DecisionFor(result),
		Confidence: result.Confidence,
		Provider:   Name,
		ReviewedAt: time.Now(),
		Reasons:    reasonsFor(result),
	}
	return review, nil
}

// Translator returns nil: the rule provider produces unified reasons
// directly from its flag vocabulary.
func (p *Provider) Translator() violation.Translator {
	return nil
}

// DecisionFor maps an engine result onto the pipeline decision vocabulary.
// Prohibited content blocks outright; rejected-but-clean content and
// malformed input go to the human review queue rather than silently
// disappearing.
func DecisionFor(result moderation.Result) moderation.Decision {
	switch {
	case result.HasFlag(moderation.FlagInappropriateContent):
		return moderation.DecisionBlock
	case result.Approved:
		return moderation.DecisionPass
	default:
		return moderation.DecisionReview
	}
}

func reasonsFor(result moderation.Result) []moderation.Reason {
	var reasons []moderation.Reason
	for _, flag := range result.Flags {
		reason := moderation.Reason{
			Code:     string(flag),
			Message:  flagMessage(flag),
			Provider: Name,
		}
		if result.DetectedLanguage != nil {
			reason.Raw = map[string]any{
				"language":            result.DetectedLanguage.Code,
				"language_confidence": result.DetectedLanguage.Confidence,
			}
		}
		reasons = append(reasons, reason)
	}
	return reasons
}

func flagMessage(flag moderation.Flag) string {
	switch flag {
	case moderation.FlagInappropriateContent:
		return "Content contains prohibited terms"
	case moderation.FlagNonGospelContent:
		return "No devotional signal found in content"
	case moderation.FlagInsufficientTranscript:
		return "No usable transcript; decision driven by title and description"
	case moderation.FlagInvalidInput:
		return "Malformed moderation request"
	default:
		return string(flag)
	}
}
