package providers

import (
	"context"
	"time"

	moderation "github.com/gospelwave/moderation"
	"github.com/gospelwave/moderation/utils"
	"github.com/gospelwave/moderation/violation"
)

// ResilientConfig configures the resilient provider wrapper.
type ResilientConfig struct {
	// Retry configuration
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration

	// Logger for provider calls
	Logger APILogger

	// EnableRetry controls whether retry is enabled.
	EnableRetry bool

	// EnableLogging controls whether logging is enabled.
	EnableLogging bool
}

// DefaultResilientConfig returns sensible defaults.
func DefaultResilientConfig() ResilientConfig {
	return ResilientConfig{
		MaxRetries:    3,
		InitialDelay:  1 * time.Second,
		MaxDelay:      30 * time.Second,
		EnableRetry:   true,
		EnableLogging: true,
	}
}

// ResilientProvider wraps a network provider with retry and logging.
// Offline providers do not need it.
type ResilientProvider struct {
	provider Provider
	config   ResilientConfig
	retryer  *utils.Retryer
	logger   APILogger
}

// NewResilientProvider creates a new resilient provider wrapper.
func NewResilientProvider(provider Provider, config ResilientConfig) *ResilientProvider {
	rp := &ResilientProvider{
		provider: provider,
		config:   config,
	}

	if config.EnableRetry {
		rp.retryer = utils.NewRetryer(utils.RetryConfig{
			MaxRetries:   config.MaxRetries,
			InitialDelay: config.InitialDelay,
			MaxDelay:     config.MaxDelay,
			Multiplier:   2.0,
			Jitter:       0.1,
		})
	}

	if config.EnableLogging {
		if config.Logger != nil {
			rp.logger = config.Logger
		} else {
			rp.logger = GlobalLogger
		}
	} else {
		rp.logger = NopLogger{}
	}

	return rp
}

// Name returns the wrapped provider's name.
func (rp *ResilientProvider) Name() string {
	return rp.provider.Name()
}

// Capability returns the wrapped provider's capability.
func (rp *ResilientProvider) Capability() Capability {
	return rp.provider.Capability()
}

// Check reviews text with retry and logging.
func (rp *ResilientProvider) Check(ctx context.Context, req CheckRequest) (moderation.ReviewResult, error) {
	timer := StartLog(rp.logger, rp.provider.Name(), "check").
		WithUpload(req.Upload).
		WithRequest(sanitizeRequest(req))

	var retryCount int

	executeCheck := func() (moderation.ReviewResult, error) {
		r, err := rp.provider.Check(ctx, req)
		if err != nil {
			retryCount++
		}
		return r, err
	}

	var result moderation.ReviewResult
	var err error
	if rp.retryer != nil {
		result, err = utils.DoWithResult(ctx, rp.retryer, executeCheck)
	} else {
		result, err = executeCheck()
	}
	if err != nil {
		timer.WithRetryCount(retryCount).Error(ctx, err, nil)
		return moderation.ReviewResult{}, err
	}

	timer.WithRetryCount(retryCount).
		WithExtra("decision", result.Decision).
		Success(ctx, sanitizeResult(result))
	return result, nil
}

// Translator returns the wrapped provider's violation translator.
func (rp *ResilientProvider) Translator() violation.Translator {
	return rp.provider.Translator()
}

// Unwrap returns the underlying provider.
func (rp *ResilientProvider) Unwrap() Provider {
	return rp.provider
}

// sanitizeRequest removes content text from the request for logging.
func sanitizeRequest(req CheckRequest) map[string]any {
	return map[string]any{
		"upload_id":    req.Upload.UploadID,
		"content_type": req.Request.ContentType,
		"has_text":     req.Text != "",
		"text_len":     len(req.Text),
	}
}

// sanitizeResult removes reason payloads from the result for logging.
func sanitizeResult(result moderation.ReviewResult) map[string]any {
	return map[string]any{
		"decision":   result.Decision,
		"confidence": result.Confidence,
		"reasons":    len(result.Reasons),
	}
}

// WrapWithResilience wraps a provider with default resilience configuration.
func WrapWithResilience(provider Provider) *ResilientProvider {
	return NewResilientProvider(provider, DefaultResilientConfig())
}

// WrapWithRetry wraps a provider with retry only.
func WrapWithRetry(provider Provider, maxRetries int) *ResilientProvider {
	return NewResilientProvider(provider, ResilientConfig{
		MaxRetries:    maxRetries,
		InitialDelay:  1 * time.Second,
		MaxDelay:      30 * time.Second,
		EnableRetry:   true,
		EnableLogging: false,
	})
}

// WrapWithLogging wraps a provider with logging only.
func WrapWithLogging(provider Provider, logger APILogger) *ResilientProvider {
	return NewResilientProvider(provider, ResilientConfig{
		Logger:        logger,
		EnableRetry:   false,
		EnableLogging: true,
	})
}
