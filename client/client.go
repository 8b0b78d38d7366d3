package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	moderation "github.com/gospelwave/moderation"
	"github.com/gospelwave/moderation/hooks"
	"github.com/gospelwave/moderation/providers"
	"github.com/gospelwave/moderation/store"
	"github.com/gospelwave/moderation/utils"
)

// Client is the main moderation client. It persists reviews, runs the
// provider pipeline, and fires hooks as decisions land.
type Client struct {
	store    store.Store
	hooks    hooks.Hooks
	pipeline *pipelineExecutor
	opts     Options
}

// New creates a new moderation client.
func New(opts Options) (*Client, error) {
	if opts.Store == nil {
		return nil, moderation.ErrStoreNotConfigured
	}

	if opts.Hooks == nil {
		opts.Hooks = hooks.NopHooks{}
	}

	pe := newPipelineExecutor(opts.Providers, opts.Pipeline)

	return &Client{
		store:    opts.Store,
		hooks:    opts.Hooks,
		pipeline: pe,
		opts:     opts,
	}, nil
}

// Submit submits an upload for review. The call is synchronous: the
// returned outcome is final, and any review-worthy upload has already
// been queued for human review when the call returns.
func (c *Client) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	contentHash := utils.ContentHash(input.Request.Transcript, input.Request.Title, input.Request.Description)

	if c.opts.EnableDedup {
		if prior, _ := c.store.FindReviewByContentHash(ctx, contentHash); prior != nil && prior.Decision != moderation.DecisionPending {
			return &SubmitResult{
				ReviewID:     prior.ID,
				Outcome:      c.parseOutcome(prior.OutcomeJSON, prior.Decision),
				Deduplicated: true,
			}, nil
		}
	}

	reviewID, err := c.store.CreateReview(ctx, input.Upload, input.Request.ContentType, contentHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := c.store.UpdateStatus(ctx, reviewID, moderation.StatusRunning); err != nil {
		return nil, fmt.Errorf("failed to update review status: %w", err)
	}

	checkReq := providers.CheckRequest{
		Request: input.Request,
		Text:    screeningText(input.Request),
		Upload:  input.Upload,
	}

	pipelineResult, err := c.pipeline.execute(ctx, checkReq)
	if err != nil {
		c.recordError(ctx, reviewID, err)
		return nil, err
	}

	outcome := pipelineResult.outcome

	if err := c.store.UpdateOutcome(ctx, reviewID, outcome); err != nil {
		return nil, fmt.Errorf("failed to update outcome: %w", err)
	}
	if err := c.store.UpdateStatus(ctx, reviewID, moderation.StatusDone); err != nil {
		return nil, fmt.Errorf("failed to update review status: %w", err)
	}

	result := &SubmitResult{
		ReviewID: reviewID,
		Outcome:  outcome,
	}

	switch outcome.Decision {
	case moderation.DecisionBlock:
		c.fireContentRejectedHook(ctx, input, outcome, reviewID)
	case moderation.DecisionReview:
		entryID, err := c.enqueueForReview(ctx, input, outcome, reviewID, checkReq.Text)
		if err != nil {
			return nil, fmt.Errorf("failed to enqueue for review: %w", err)
		}
		result.QueueEntryID = entryID
	}

	c.fireContentModeratedHook(ctx, input, outcome, reviewID)

	return result, nil
}

// Query queries the status of a review.
func (c *Client) Query(ctx context.Context, input QueryInput) (*QueryResult, error) {
	review, err := c.store.GetReview(ctx, input.ReviewID)
	if err != nil {
		return nil, err
	}

	result := &QueryResult{
		Review:   review,
		Complete: review.Decision != moderation.DecisionPending,
	}

	if result.Complete && review.OutcomeJSON != "" {
		var outcome moderation.Outcome
		if err := json.Unmarshal([]byte(review.OutcomeJSON), &outcome); err == nil {
			result.Outcome = &outcome
		}
	}

	return result, nil
}

// ReviewQueue lists pending human review entries, oldest first.
func (c *Client) ReviewQueue(ctx context.Context, limit int) ([]moderation.QueueEntry, error) {
	return c.store.ListQueue(ctx, limit)
}

// Resolve records a human reviewer's final decision for a review.
func (c *Client) Resolve(ctx context.Context, reviewID string, decision moderation.Decision) error {
	changed, err := c.store.UpdateDecision(ctx, reviewID, decision)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return c.store.UpdateStatus(ctx, reviewID, moderation.StatusDone)
}

// screeningText joins all text signals for provider screening. Unlike the
// decision engine's transcript-or-fallback assembly, cloud screens see
// every field: a clean transcript does not excuse a profane title.
func screeningText(req moderation.Request) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{req.Transcript, req.Title, req.Description} {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// enqueueForReview puts an upload into the human review queue.
func (c *Client) enqueueForReview(ctx context.Context, input SubmitInput, outcome moderation.Outcome, reviewID, text string) (string, error) {
	flagsJSON, _ := json.Marshal(outcome.Flags)

	entryID, err := c.store.EnqueueForReview(ctx, moderation.QueueEntry{
		ReviewID:   reviewID,
		UploadID:   input.Upload.UploadID,
		Text:       text,
		Decision:   outcome.Decision,
		Confidence: outcome.Confidence,
		FlagsJSON:  string(flagsJSON),
	})
	if err != nil {
		return "", err
	}

	c.fireManualReviewQueuedHook(ctx, input, outcome, reviewID, entryID)

	return entryID, nil
}

// recordError records a pipeline failure against the review.
func (c *Client) recordError(ctx context.Context, reviewID string, err error) {
	outcome := moderation.Outcome{
		Decision: moderation.DecisionError,
		Reasons: []moderation.Reason{{
			Code:    "error",
			Message: err.Error(),
		}},
	}
	if updateErr := c.store.UpdateOutcome(ctx, reviewID, outcome); updateErr != nil {
		// Already in error handling, nothing more to do.
		_ = updateErr
	}
}

// parseOutcome parses an Outcome from stored JSON.
func (c *Client) parseOutcome(jsonStr string, decision moderation.Decision) moderation.Outcome {
	var outcome moderation.Outcome
	if jsonStr == "" {
		outcome.Decision = decision
		return outcome
	}
	if err := json.Unmarshal([]byte(jsonStr), &outcome); err != nil {
		return moderation.Outcome{
			Decision: moderation.DecisionError,
			Reasons: []moderation.Reason{{
				Code:    "parse_error",
				Message: "Failed to parse outcome JSON",
			}},
		}
	}
	return outcome
}

// fireContentModeratedHook fires the content moderated hook.
func (c *Client) fireContentModeratedHook(ctx context.Context, input SubmitInput, outcome moderation.Outcome, reviewID string) {
	event := hooks.ContentModeratedEvent{
		Upload:    input.Upload,
		Request:   input.Request,
		Outcome:   outcome,
		ReviewID:  reviewID,
		TraceID:   input.Upload.TraceID,
		Timestamp: time.Now(),
	}
	c.hooks.OnContentModerated(ctx, event)
}

// fireContentRejectedHook fires the content rejected hook.
func (c *Client) fireContentRejectedHook(ctx context.Context, input SubmitInput, outcome moderation.Outcome, reviewID string) {
	provider := ""
	for _, r := range outcome.Results {
		if r.Decision == moderation.DecisionBlock {
			provider = r.Provider
			break
		}
	}

	event := hooks.ContentRejectedEvent{
		Upload:    input.Upload,
		Request:   input.Request,
		Outcome:   outcome,
		Provider:  provider,
		ReviewID:  reviewID,
		TraceID:   input.Upload.TraceID,
		Timestamp: time.Now(),
	}
	c.hooks.OnContentRejected(ctx, event)
}

// fireManualReviewQueuedHook fires the manual review queued hook.
func (c *Client) fireManualReviewQueuedHook(ctx context.Context, input SubmitInput, outcome moderation.Outcome, reviewID, entryID string) {
	event := hooks.ManualReviewQueuedEvent{
		Upload:       input.Upload,
		Request:      input.Request,
		Outcome:      outcome,
		QueueEntryID: entryID,
		ReviewID:     reviewID,
		TraceID:      input.Upload.TraceID,
		Timestamp:    time.Now(),
	}
	c.hooks.OnManualReviewQueued(ctx, event)
}
