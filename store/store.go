// Package store provides the data storage interface for the moderation system.
package store

import (
	"context"
	"time"

	moderation "github.com/gospelwave/moderation"
)

// Store defines the interface for moderation data storage.
type Store interface {
	// Review operations
	CreateReview(ctx context.Context, upload moderation.UploadContext, contentType moderation.ContentType, contentHash string) (reviewID string, err error)
	GetReview(ctx context.Context, reviewID string) (*moderation.Review, error)
	FindReviewByContentHash(ctx context.Context, contentHash string) (*moderation.Review, error)
	UpdateDecision(ctx context.Context, reviewID string, decision moderation.Decision) (changed bool, err error)
	UpdateStatus(ctx context.Context, reviewID string, status moderation.ReviewStatus) error
	UpdateOutcome(ctx context.Context, reviewID string, outcome moderation.Outcome) error

	// Human review queue operations
	EnqueueForReview(ctx context.Context, entry moderation.QueueEntry) (entryID string, err error)
	ListQueue(ctx context.Context, limit int) ([]moderation.QueueEntry, error)
	ClaimQueueEntry(ctx context.Context, entryID string) (claimed bool, err error)

	// Utility
	Now() time.Time

	// Transaction support
	WithTx(ctx context.Context, fn func(Store) error) error

	// Health check
	Ping(ctx context.Context) error
	Close() error
}

// QueryOptions provides common query options.
type QueryOptions struct {
	Limit  int
	Offset int
	Since  *time.Time
	Until  *time.Time
}
