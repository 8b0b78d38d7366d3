package aliyun

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	green "github.com/alibabacloud-go/green-20220302/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"

	moderation "github.com/gospelwave/moderation"
	"github.com/gospelwave/moderation/providers"
	"github.com/gospelwave/moderation/utils"
	"github.com/gospelwave/moderation/violation"
)

const providerName = "aliyun"

// maxTextLength is the Aliyun text moderation per-request limit.
const maxTextLength = 10000

// Provider implements the Aliyun text moderation screen.
type Provider struct {
	config     Config
	client     *green.Client
	translator violation.Translator
}

// New creates a new Aliyun provider.
func New(cfg Config) (*Provider, error) {
	if cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" {
		return nil, moderation.ErrMissingConfig
	}

	p := &Provider{
		config:     cfg,
		translator: newTranslator(),
	}

	if err := p.initClient(); err != nil {
		return nil, fmt.Errorf("failed to init aliyun client: %w", err)
	}

	return p, nil
}

func (p *Provider) initClient() error {
	config := &openapi.Config{
		AccessKeyId:     tea.String(p.config.AccessKeyID),
		AccessKeySecret: tea.String(p.config.AccessKeySecret),
		RegionId:        tea.String(p.config.Region),
		Endpoint:        tea.String(p.config.Endpoint),
	}

	client, err := green.NewClient(config)
	if err != nil {
		return err
	}

	p.client = client
	return nil
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return providerName
}

// Capability returns the Aliyun text capability.
func (p *Provider) Capability() providers.Capability {
	return providers.Capability{
		MaxTextLength: maxTextLength,
		Offline:       false,
	}
}

// Check screens the assembled text through the Aliyun Green text API.
func (p *Provider) Check(ctx context.Context, req providers.CheckRequest) (moderation.ReviewResult, error) {
	serviceParams := map[string]interface{}{
		"content": utils.TruncateText(req.Text, maxTextLength),
	}
	if req.Upload.SubmitterID != "" {
		serviceParams["accountId"] = req.Upload.SubmitterID
	}

	serviceParamsJSON, err := json.Marshal(serviceParams)
	if err != nil {
		return moderation.ReviewResult{}, fmt.Errorf("failed to marshal service params: %w", err)
	}

	textReq := &green.TextModerationRequest{
		Service:           tea.String(p.config.Service),
		ServiceParameters: tea.String(string(serviceParamsJSON)),
	}

	runtime := &util.RuntimeOptions{}
	resp, err := p.client.TextModerationWithOptions(textReq, runtime)
	if err != nil {
		return moderation.ReviewResult{}, moderation.NewProviderError(providerName, "request_failed", err.Error()).WithCause(err)
	}

	if resp.Body == nil || resp.Body.Code == nil {
		return moderation.ReviewResult{}, moderation.NewProviderError(providerName, "invalid_response", "empty response body")
	}

	if *resp.Body.Code != 200 {
		return moderation.ReviewResult{}, moderation.NewProviderError(providerName,
			fmt.Sprintf("%d", *resp.Body.Code), tea.StringValue(resp.Body.Message)).
			WithStatusCode(int(*resp.Body.Code))
	}

	return p.parseTextResponse(resp.Body), nil
}

// parseTextResponse folds the Green API labels into a review result via
// the unified violation translator.
func (p *Provider) parseTextResponse(body *green.TextModerationResponseBody) moderation.ReviewResult {
	result := moderation.ReviewResult{
		Decision:   moderation.DecisionPass,
		Confidence: 1.0,
		Provider:   providerName,
		ReviewedAt: time.Now(),
	}

	if body.Data == nil || body.Data.Labels == nil || *body.Data.Labels == "" {
		return result
	}

	var labels []string
	for _, label := range strings.Split(*body.Data.Labels, ",") {
		label = strings.TrimSpace(label)
		if label != "" {
			labels = append(labels, label)
		}
	}

	violations := violation.Merge(p.translator.Translate(labels, nil))
	result.Decision = violations.Decide()
	result.Reasons = violations.Reasons()

	// The reason field carries a riskLevel hint that refines confidence.
	if body.Data.Reason != nil && *body.Data.Reason != "" {
		var reasonData map[string]interface{}
		if err := json.Unmarshal([]byte(*body.Data.Reason), &reasonData); err == nil {
			if riskLevel, ok := reasonData["riskLevel"].(string); ok {
				switch riskLevel {
				case "high":
					result.Confidence = 0.95
				case "medium":
					result.Confidence = 0.75
				case "low":
					result.Confidence = 0.5
				}
			}
		}
	}

	return result
}

// Translator returns the violation translator for Aliyun labels.
func (p *Provider) Translator() violation.Translator {
	return p.translator
}
