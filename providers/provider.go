// Package providers defines the capability interface for moderation
// providers. The deterministic rule engine is the primary provider; cloud
// text-moderation services can be layered behind it as secondary safety
// screens. All providers here review text synchronously; transcription of
// audio and video happens upstream, outside this subsystem.
package providers

import (
	"context"
	"time"

	moderation "github.com/gospelwave/moderation"
	"github.com/gospelwave/moderation/violation"
)

// Capability describes what a provider can handle.
type Capability struct {
	// MaxTextLength is the maximum text length per request in runes.
	// Zero means no limit.
	MaxTextLength int

	// Offline is true for providers that perform no network I/O.
	Offline bool
}

// CheckRequest carries one upload's text signals to a provider.
type CheckRequest struct {
	// Request is the original moderation request. The rule provider
	// consumes the structured fields directly.
	Request moderation.Request

	// Text is the assembled text (transcript, or title plus description).
	// Cloud providers screen this form.
	Text string

	// Upload identifies the upload for tracing and storage.
	Upload moderation.UploadContext

	// Timeout bounds the provider call; zero means the provider default.
	Timeout time.Duration
}

// Provider is a single moderation capability, tried in pipeline order.
type Provider interface {
	// Name returns the provider name (e.g., "rule", "aliyun", "tencent").
	Name() string

	// Capability returns what the provider can handle.
	Capability() Capability

	// Check reviews the request text and returns a decision. Offline
	// providers never return an error.
	Check(ctx context.Context, req CheckRequest) (moderation.ReviewResult, error)

	// Translator returns the violation translator for this provider, or
	// nil when the provider produces unified reasons directly.
	Translator() violation.Translator
}

// ProviderConfig is the base configuration for cloud providers.
type ProviderConfig struct {
	AccessKeyID     string
	AccessKeySecret string
	Region          string
	Endpoint        string
	Timeout         time.Duration
}

// DecisionSeverity orders decisions from most to least permissive, for
// most-strict merging.
func DecisionSeverity(d moderation.Decision) int {
	switch d {
	case moderation.DecisionPass:
		return 0
	case moderation.DecisionPending:
		return 1
	case moderation.DecisionReview:
		return 2
	case moderation.DecisionError:
		return 3
	case moderation.DecisionBlock:
		return 4
	default:
		return 1
	}
}
