// Package tencent provides a Tencent Cloud text moderation screen for the
// provider pipeline.
package tencent

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	tms "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/tms/v20201229"

	moderation "github.com/gospelwave/moderation"
	"github.com/gospelwave/moderation/providers"
	"github.com/gospelwave/moderation/utils"
	"github.com/gospelwave/moderation/violation"
)

const providerName = "tencent"

// maxTextLength is the TMS per-request limit.
const maxTextLength = 10000

// Config holds the configuration for the Tencent provider.
type Config struct {
	providers.ProviderConfig

	// BizType selects the TMS moderation strategy configured in the
	// Tencent console. Empty uses the account default.
	BizType string
}

// DefaultConfig returns the default Tencent configuration.
func DefaultConfig() Config {
	return Config{
		ProviderConfig: providers.ProviderConfig{
			Region:   "ap-guangzhou",
			Endpoint: "tms.tencentcloudapi.com",
			Timeout:  30 * time.Second,
		},
	}
}

// Provider implements the Tencent text moderation screen.
type Provider struct {
	config     Config
	tmsClient  *tms.Client
	translator violation.Translator
	credential *common.Credential
}

// New creates a new Tencent provider.
func New(cfg Config) (*Provider, error) {
	if cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" {
		return nil, moderation.ErrMissingConfig
	}

	p := &Provider{
		config:     cfg,
		translator: newTranslator(),
	}

	if err := p.initClient(); err != nil {
		return nil, fmt.Errorf("failed to init tencent client: %w", err)
	}

	return p, nil
}

func (p *Provider) initClient() error {
	p.credential = common.NewCredential(p.config.AccessKeyID, p.config.AccessKeySecret)

	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = p.config.Endpoint

	tmsClient, err := tms.NewClient(p.credential, p.config.Region, cpf)
	if err != nil {
		return fmt.Errorf("failed to create tms client: %w", err)
	}
	p.tmsClient = tmsClient

	return nil
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return providerName
}

// Capability returns the Tencent text capability.
func (p *Provider) Capability() providers.Capability {
	return providers.Capability{
		MaxTextLength: maxTextLength,
		Offline:       false,
	}
}

// Check screens the assembled text through the TMS API.
func (p *Provider) Check(ctx context.Context, req providers.CheckRequest) (moderation.ReviewResult, error) {
	textReq := tms.NewTextModerationRequest()
	content := base64.StdEncoding.EncodeToString([]byte(utils.TruncateText(req.Text, maxTextLength)))
	textReq.Content = &content

	if p.config.BizType != "" {
		textReq.BizType = &p.config.BizType
	}
	if req.Upload.SubmitterID != "" {
		textReq.User = &tms.User{
			UserId: &req.Upload.SubmitterID,
		}
	}

	resp, err := p.tmsClient.TextModeration(textReq)
	if err != nil {
		return moderation.ReviewResult{}, moderation.NewProviderError(providerName, "request_failed", err.Error()).WithCause(err)
	}

	return p.parseTextResponse(resp), nil
}

// parseTextResponse maps the TMS suggestion and labels onto a review
// result. The suggestion drives the decision; labels become reasons via
// the unified translator.
func (p *Provider) parseTextResponse(resp *tms.TextModerationResponse) moderation.ReviewResult {
	result := moderation.ReviewResult{
		Decision:   moderation.DecisionPass,
		Confidence: 1.0,
		Provider:   providerName,
		ReviewedAt: time.Now(),
	}

	if resp.Response == nil {
		return result
	}

	r := resp.Response

	if r.Suggestion != nil {
		switch *r.Suggestion {
		case "Block":
			result.Decision = moderation.DecisionBlock
		case "Review":
			result.Decision = moderation.DecisionReview
		case "Pass":
			result.Decision = moderation.DecisionPass
		}
	}

	var labels []string
	scores := make(map[string]float64)

	if r.Label != nil && *r.Label != "" {
		labels = append(labels, *r.Label)
	}
	if r.DetailResults != nil {
		for _, detail := range r.DetailResults {
			if detail.Label == nil {
				continue
			}
			labels = append(labels, *detail.Label)
			if detail.Score != nil {
				scores[*detail.Label] = float64(*detail.Score) / 100.0
			}
		}
	}

	// The top-level label usually repeats in the detail rows; merging
	// collapses them onto one reason per domain.
	violations := violation.Merge(p.translator.Translate(labels, scores))
	result.Reasons = violations.Reasons()

	if result.Decision != moderation.DecisionPass {
		var maxScore float64
		for _, score := range scores {
			if score > maxScore {
				maxScore = score
			}
		}
		if maxScore > 0 {
			result.Confidence = maxScore
		}
	}

	return result
}

// Translator returns the violation translator for Tencent labels.
func (p *Provider) Translator() violation.Translator {
	return p.translator
}
