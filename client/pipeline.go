package client

import (
	"context"

	moderation "github.com/gospelwave/moderation"
	"github.com/gospelwave/moderation/providers"
)

// pipelineExecutor handles the provider pipeline execution.
type pipelineExecutor struct {
	providers map[string]providers.Provider
	config    PipelineConfig
}

// newPipelineExecutor creates a new pipeline executor.
func newPipelineExecutor(provs []providers.Provider, config PipelineConfig) *pipelineExecutor {
	provMap := make(map[string]providers.Provider)
	for _, p := range provs {
		provMap[p.Name()] = p
	}
	return &pipelineExecutor{
		providers: provMap,
		config:    config,
	}
}

// execute runs the provider pipeline for one upload.
func (pe *pipelineExecutor) execute(ctx context.Context, req providers.CheckRequest) (*pipelineResult, error) {
	result := &pipelineResult{
		providerResults: make(map[string]*moderation.ReviewResult),
	}

	primary, ok := pe.providers[pe.config.Primary]
	if !ok {
		return nil, moderation.ErrProviderNotFound
	}

	primaryResult, err := primary.Check(ctx, req)
	if err != nil {
		return nil, err
	}
	result.providerResults[pe.config.Primary] = &primaryResult

	if pe.shouldTriggerSecondary(primaryResult.Decision) {
		if err := pe.runSecondary(ctx, req, result); err != nil {
			// The primary result stands on its own; a failed secondary
			// screen is recorded but does not fail the review.
			result.secondaryError = err
		}
	}

	result.outcome = pe.computeOutcome(result.providerResults)

	return result, nil
}

// shouldTriggerSecondary checks if the secondary provider should be invoked.
func (pe *pipelineExecutor) shouldTriggerSecondary(decision moderation.Decision) bool {
	if pe.config.Secondary == "" {
		return false
	}
	return pe.config.Trigger.ShouldTrigger(decision)
}

// runSecondary runs the secondary provider.
func (pe *pipelineExecutor) runSecondary(ctx context.Context, req providers.CheckRequest, result *pipelineResult) error {
	secondary, ok := pe.providers[pe.config.Secondary]
	if !ok {
		return moderation.ErrProviderNotFound
	}

	secondaryResult, err := secondary.Check(ctx, req)
	if err != nil {
		return err
	}
	result.providerResults[pe.config.Secondary] = &secondaryResult

	return nil
}

// computeOutcome merges provider results into one outcome.
func (pe *pipelineExecutor) computeOutcome(results map[string]*moderation.ReviewResult) moderation.Outcome {
	outcome := moderation.Outcome{
		Decision: pe.mergeDecisions(results),
	}

	// Ordered by pipeline position so the outcome is stable.
	for _, name := range []string{pe.config.Primary, pe.config.Secondary} {
		result, ok := results[name]
		if !ok || result == nil {
			continue
		}

		outcome.Reasons = append(outcome.Reasons, result.Reasons...)
		outcome.Results = append(outcome.Results, *result)

		if result.Decision == outcome.Decision && result.Confidence > outcome.Confidence {
			outcome.Confidence = result.Confidence
		}
		if outcome.Language == "" {
			outcome.Language = extractLanguage(result.Reasons)
		}
	}

	for _, reason := range outcome.Reasons {
		if flag, ok := knownFlag(reason.Code); ok {
			outcome.Flags = append(outcome.Flags, flag)
		}
	}

	return outcome
}

// knownFlag maps a reason code back to a flag. Cloud provider reasons use
// violation domain codes, which stay out of the flag vocabulary.
func knownFlag(code string) (moderation.Flag, bool) {
	switch f := moderation.Flag(code); f {
	case moderation.FlagInappropriateContent,
		moderation.FlagNonGospelContent,
		moderation.FlagInsufficientTranscript,
		moderation.FlagInvalidInput:
		return f, true
	}
	return "", false
}

// mergeDecisions merges decisions based on the merge policy.
func (pe *pipelineExecutor) mergeDecisions(results map[string]*moderation.ReviewResult) moderation.Decision {
	switch pe.config.Merge {
	case MergeMostStrict:
		return pe.mergeMostStrict(results)
	case MergeMajority:
		return pe.mergeMajority(results)
	case MergeAny:
		return pe.mergeAny(results)
	case MergeAll:
		return pe.mergeAll(results)
	default:
		return pe.mergeMostStrict(results)
	}
}

// mergeMostStrict takes the strictest decision.
func (pe *pipelineExecutor) mergeMostStrict(results map[string]*moderation.ReviewResult) moderation.Decision {
	strictest := moderation.DecisionPass

	for _, r := range results {
		if r == nil {
			continue
		}
		if providers.DecisionSeverity(r.Decision) > providers.DecisionSeverity(strictest) {
			strictest = r.Decision
		}
	}

	return strictest
}

// mergeMajority takes the majority decision.
func (pe *pipelineExecutor) mergeMajority(results map[string]*moderation.ReviewResult) moderation.Decision {
	counts := make(map[moderation.Decision]int)

	for _, r := range results {
		if r == nil {
			continue
		}
		counts[r.Decision]++
	}

	maxCount := 0
	majority := moderation.DecisionPass
	for decision, count := range counts {
		if count > maxCount || (count == maxCount && providers.DecisionSeverity(decision) > providers.DecisionSeverity(majority)) {
			maxCount = count
			majority = decision
		}
	}

	return majority
}

// mergeAny takes the first non-pass decision in pipeline order.
func (pe *pipelineExecutor) mergeAny(results map[string]*moderation.ReviewResult) moderation.Decision {
	for _, name := range []string{pe.config.Primary, pe.config.Secondary} {
		r, ok := results[name]
		if !ok || r == nil {
			continue
		}
		if r.Decision != moderation.DecisionPass {
			return r.Decision
		}
	}
	return moderation.DecisionPass
}

// mergeAll requires all providers to agree before blocking or reviewing.
func (pe *pipelineExecutor) mergeAll(results map[string]*moderation.ReviewResult) moderation.Decision {
	allBlock := true
	allReview := true
	hasResult := false

	for _, r := range results {
		if r == nil {
			continue
		}
		hasResult = true
		if r.Decision != moderation.DecisionBlock {
			allBlock = false
		}
		if r.Decision != moderation.DecisionReview && r.Decision != moderation.DecisionBlock {
			allReview = false
		}
	}

	if !hasResult {
		return moderation.DecisionPass
	}
	if allBlock {
		return moderation.DecisionBlock
	}
	if allReview {
		return moderation.DecisionReview
	}
	return moderation.DecisionPass
}

// extractLanguage pulls the detected language from rule provider reasons.
func extractLanguage(reasons []moderation.Reason) string {
	for _, r := range reasons {
		if r.Raw == nil {
			continue
		}
		if lang, ok := r.Raw["language"].(string); ok && lang != "" {
			return lang
		}
	}
	return ""
}

// pipelineResult holds the result of a pipeline execution.
type pipelineResult struct {
	providerResults map[string]*moderation.ReviewResult
	outcome         moderation.Outcome
	secondaryError  error
}
