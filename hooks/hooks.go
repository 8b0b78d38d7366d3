// Package hooks provides the hook interface for handling moderation events.
package hooks

import (
	"context"
)

// Hooks defines the interface for handling moderation events.
// Implement this interface to receive notifications when reviews complete.
type Hooks interface {
	// OnContentModerated is called when an upload's review completes.
	OnContentModerated(ctx context.Context, e ContentModeratedEvent) error

	// OnContentRejected is called when an upload is blocked.
	OnContentRejected(ctx context.Context, e ContentRejectedEvent) error

	// OnManualReviewQueued is called when an upload is queued for human review.
	OnManualReviewQueued(ctx context.Context, e ManualReviewQueuedEvent) error
}

// NopHooks is a no-op implementation of Hooks.
type NopHooks struct{}

// OnContentModerated does nothing.
func (NopHooks) OnContentModerated(ctx context.Context, e ContentModeratedEvent) error {
	return nil
}

// OnContentRejected does nothing.
func (NopHooks) OnContentRejected(ctx context.Context, e ContentRejectedEvent) error {
	return nil
}

// OnManualReviewQueued does nothing.
func (NopHooks) OnManualReviewQueued(ctx context.Context, e ManualReviewQueuedEvent) error {
	return nil
}

// Ensure NopHooks implements Hooks.
var _ Hooks = NopHooks{}

// ChainHooks chains multiple Hooks implementations.
type ChainHooks []Hooks

// OnContentModerated calls all hooks in order.
func (ch ChainHooks) OnContentModerated(ctx context.Context, e ContentModeratedEvent) error {
	for _, h := range ch {
		if err := h.OnContentModerated(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// OnContentRejected calls all hooks in order.
func (ch ChainHooks) OnContentRejected(ctx context.Context, e ContentRejectedEvent) error {
	for _, h := range ch {
		if err := h.OnContentRejected(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// OnManualReviewQueued calls all hooks in order.
func (ch ChainHooks) OnManualReviewQueued(ctx context.Context, e ManualReviewQueuedEvent) error {
	for _, h := range ch {
		if err := h.OnManualReviewQueued(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// FuncHooks allows using functions as hooks.
type FuncHooks struct {
	OnContentModeratedFunc   func(ctx context.Context, e ContentModeratedEvent) error
	OnContentRejectedFunc    func(ctx context.Context, e ContentRejectedEvent) error
	OnManualReviewQueuedFunc func(ctx context.Context, e ManualReviewQueuedEvent) error
}

// OnContentModerated calls the function if set.
func (fh FuncHooks) OnContentModerated(ctx context.Context, e ContentModeratedEvent) error {
	if fh.OnContentModeratedFunc != nil {
		return fh.OnContentModeratedFunc(ctx, e)
	}
	return nil
}

// OnContentRejected calls the function if set.
func (fh FuncHooks) OnContentRejected(ctx context.Context, e ContentRejectedEvent) error {
	if fh.OnContentRejectedFunc != nil {
		return fh.OnContentRejectedFunc(ctx, e)
	}
	return nil
}

// OnManualReviewQueued calls the function if set.
func (fh FuncHooks) OnManualReviewQueued(ctx context.Context, e ManualReviewQueuedEvent) error {
	if fh.OnManualReviewQueuedFunc != nil {
		return fh.OnManualReviewQueuedFunc(ctx, e)
	}
	return nil
}
