package hooks

import (
	"time"

	moderation "github.com/gospelwave/moderation"
)

// ContentModeratedEvent is emitted when an upload's review completes,
// whatever the decision.
type ContentModeratedEvent struct {
	// Upload context
	Upload moderation.UploadContext `json:"upload"`

	// Request that was moderated
	Request moderation.Request `json:"request"`

	// Merged outcome across providers
	Outcome moderation.Outcome `json:"outcome"`

	// Previous decision (empty on first review)
	PreviousDecision moderation.Decision `json:"previous_decision,omitempty"`

	// Review ID for tracing
	ReviewID string `json:"review_id"`

	// Tracing
	TraceID   string    `json:"trace_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ContentRejectedEvent is emitted when an upload is blocked outright.
type ContentRejectedEvent struct {
	// Upload context
	Upload moderation.UploadContext `json:"upload"`

	// Request that was rejected
	Request moderation.Request `json:"request"`

	// Merged outcome across providers
	Outcome moderation.Outcome `json:"outcome"`

	// Provider whose result drove the rejection
	Provider string `json:"provider"`

	// Review ID for tracing
	ReviewID string `json:"review_id"`

	// Tracing
	TraceID   string    `json:"trace_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ManualReviewQueuedEvent is emitted when an upload lands in the human
// review queue.
type ManualReviewQueuedEvent struct {
	// Upload context
	Upload moderation.UploadContext `json:"upload"`

	// Request awaiting review
	Request moderation.Request `json:"request"`

	// Automated outcome that triggered queueing
	Outcome moderation.Outcome `json:"outcome"`

	// Queue entry ID
	QueueEntryID string `json:"queue_entry_id"`

	// Review ID for tracing
	ReviewID string `json:"review_id"`

	// Tracing
	TraceID   string    `json:"trace_id"`
	Timestamp time.Time `json:"timestamp"`
}

// DecisionChange represents a change in decision.
type DecisionChange struct {
	From moderation.Decision `json:"from"`
	To   moderation.Decision `json:"to"`
}

// IsEscalation returns true if the decision became stricter.
func (dc DecisionChange) IsEscalation() bool {
	return decisionSeverity(dc.To) > decisionSeverity(dc.From)
}

// IsDeescalation returns true if the decision became more lenient.
func (dc DecisionChange) IsDeescalation() bool {
	return decisionSeverity(dc.To) < decisionSeverity(dc.From)
}

func decisionSeverity(d moderation.Decision) int {
	switch d {
	case moderation.DecisionPass:
		return 0
	case moderation.DecisionPending:
		return 1
	case moderation.DecisionReview:
		return 2
	case moderation.DecisionBlock:
		return 3
	case moderation.DecisionError:
		return 4
	default:
		return 0
	}
}
