// Package client provides the main moderation client for submitting uploads.
package client

import (
	moderation "github.com/gospelwave/moderation"
	"github.com/gospelwave/moderation/hooks"
	"github.com/gospelwave/moderation/providers"
	"github.com/gospelwave/moderation/store"
)

// Options configures the moderation client.
type Options struct {
	// Store is the data storage backend (required).
	Store store.Store

	// Hooks receives notifications when reviews complete.
	Hooks hooks.Hooks

	// Providers is the list of moderation providers.
	Providers []providers.Provider

	// Pipeline defines the provider chain and merge strategy.
	Pipeline PipelineConfig

	// EnableDedup returns the prior outcome for resubmitted content
	// instead of re-running the pipeline.
	EnableDedup bool
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Hooks:       hooks.NopHooks{},
		EnableDedup: true,
		Pipeline: PipelineConfig{
			Trigger: DefaultTriggerRule(),
			Merge:   MergeMostStrict,
		},
	}
}

// PipelineConfig configures the provider pipeline.
type PipelineConfig struct {
	// Primary is the primary provider name.
	Primary string

	// Secondary is the secondary provider name (optional).
	Secondary string

	// Trigger defines when to invoke the secondary provider.
	Trigger TriggerRule

	// Merge defines how to merge results from multiple providers.
	Merge MergePolicy
}

// TriggerRule defines when to trigger the secondary provider.
type TriggerRule struct {
	// OnDecisions triggers the secondary provider on these decisions.
	OnDecisions map[moderation.Decision]bool
}

// DefaultTriggerRule escalates anything the primary provider did not pass.
func DefaultTriggerRule() TriggerRule {
	return TriggerRule{
		OnDecisions: map[moderation.Decision]bool{
			moderation.DecisionBlock:  true,
			moderation.DecisionReview: true,
			moderation.DecisionError:  true,
		},
	}
}

// ShouldTrigger checks if the decision should trigger the secondary provider.
func (tr TriggerRule) ShouldTrigger(decision moderation.Decision) bool {
	return tr.OnDecisions[decision]
}

// MergePolicy defines how to merge results from multiple providers.
type MergePolicy string

const (
	// MergeMostStrict takes the strictest decision (block > review > pass).
	MergeMostStrict MergePolicy = "most_strict"

	// MergeMajority takes the majority decision.
	MergeMajority MergePolicy = "majority"

	// MergeAny takes the first non-pass decision.
	MergeAny MergePolicy = "any"

	// MergeAll requires all providers to block/review.
	MergeAll MergePolicy = "all"
)

// SubmitInput is the input for submitting an upload for review.
type SubmitInput struct {
	// Upload is the upload context.
	Upload moderation.UploadContext

	// Request carries the upload's text signals.
	Request moderation.Request
}

// SubmitResult is the result of submitting an upload for review.
type SubmitResult struct {
	// ReviewID is the persisted review ID.
	ReviewID string

	// Outcome is the merged outcome across providers.
	Outcome moderation.Outcome

	// Deduplicated is true when the outcome came from a prior review of
	// identical content.
	Deduplicated bool

	// QueueEntryID is set when the upload was queued for human review.
	QueueEntryID string
}

// QueryInput is the input for querying review status.
type QueryInput struct {
	// ReviewID is the persisted review ID.
	ReviewID string
}

// QueryResult is the result of querying review status.
type QueryResult struct {
	// Review is the persisted review record.
	Review *moderation.Review

	// Complete is true if the review has a final decision.
	Complete bool

	// Outcome is the merged outcome (only if complete).
	Outcome *moderation.Outcome
}
