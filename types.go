package moderation

import (
	"time"
)

// Request carries the text signals for one upload. It is constructed by the
// caller per upload, never mutated, and never persisted by this package.
type Request struct {
	// Transcript is the spoken-word text produced by the external
	// transcription service. Empty on transcription failure, which is a
	// valid, expected input (short musical clips may have no spoken words).
	Transcript string `json:"transcript,omitempty"`

	// Title is the user-supplied title of the upload.
	Title string `json:"title"`

	// Description is the optional user-supplied description.
	Description string `json:"description,omitempty"`

	// ContentType is the kind of content being uploaded.
	ContentType ContentType `json:"content_type"`
}

// DetectedLanguage describes the best-matching language for a text.
type DetectedLanguage struct {
	Code       string  `json:"code"`       // Registry code, or "unknown"
	Name       string  `json:"name"`       // Display name
	Confidence float64 `json:"confidence"` // Match confidence in [0,1]
}

// Result is the outcome of moderating one Request. It is produced fresh on
// every call; for identical input the result is identical across calls.
type Result struct {
	Approved         bool              `json:"is_approved"`
	Confidence       float64           `json:"confidence"` // Always in [0,1]
	Flags            []Flag            `json:"flags"`
	DetectedLanguage *DetectedLanguage `json:"detected_language,omitempty"`
}

// HasFlag reports whether the result carries the given flag.
func (r Result) HasFlag(f Flag) bool {
	for _, have := range r.Flags {
		if have == f {
			return true
		}
	}
	return false
}

// Reason explains a provider's review decision.
type Reason struct {
	Code     string         `json:"code"`     // Reason code
	Message  string         `json:"message"`  // Human-readable message
	Provider string         `json:"provider"` // Which provider detected this
	HitTags  []string       `json:"hit_tags"` // Labels that were hit
	Raw      map[string]any `json:"raw"`      // Raw provider response (trimmed)
}

// ReviewResult is the result of one provider screening pass.
type ReviewResult struct {
	Decision   Decision  `json:"decision"`    // pass/review/block/error
	Confidence float64   `json:"confidence"`  // Confidence score (0-1)
	Reasons    []Reason  `json:"reasons"`     // Reasons for the decision
	Provider   string    `json:"provider"`    // Provider name
	ReviewedAt time.Time `json:"reviewed_at"` // When the review completed
}

// Outcome is the merged end state of one upload's review across providers.
type Outcome struct {
	Decision   Decision       `json:"decision"`
	Confidence float64        `json:"confidence"`
	Flags      []Flag         `json:"flags,omitempty"`
	Language   string         `json:"language,omitempty"`
	Reasons    []Reason       `json:"reasons,omitempty"`
	Results    []ReviewResult `json:"results,omitempty"`
}

// UploadContext identifies the upload a review belongs to. It is supplied
// by the calling pipeline alongside the Request.
type UploadContext struct {
	UploadID    string    `json:"upload_id"`    // Upload object ID
	SubmitterID string    `json:"submitter_id"` // Who submitted the content
	TraceID     string    `json:"trace_id"`     // Request trace ID for debugging
	CreatedAt   time.Time `json:"created_at"`   // When the upload was created
}

// Review is a persisted review record for one upload.
type Review struct {
	ID          string       `json:"id" db:"id"`
	UploadID    string       `json:"upload_id" db:"upload_id"`
	SubmitterID string       `json:"submitter_id" db:"submitter_id"`
	TraceID     string       `json:"trace_id" db:"trace_id"`
	ContentType ContentType  `json:"content_type" db:"content_type"`
	ContentHash string       `json:"content_hash" db:"content_hash"`
	Decision    Decision     `json:"decision" db:"decision"`
	Status      ReviewStatus `json:"status" db:"status"`
	Language    string       `json:"language" db:"language"`
	Confidence  float64      `json:"confidence" db:"confidence"`
	FlagsJSON   string       `json:"flags_json" db:"flags_json"`
	OutcomeJSON string       `json:"outcome_json" db:"outcome_json"`
	CreatedAt   int64        `json:"created_at" db:"created_at"`
	UpdatedAt   int64        `json:"updated_at" db:"updated_at"`
}

// QueueEntry is one item in the human review queue.
type QueueEntry struct {
	ID         string   `json:"id" db:"id"`
	ReviewID   string   `json:"review_id" db:"review_id"`
	UploadID   string   `json:"upload_id" db:"upload_id"`
	Text       string   `json:"text" db:"text"`
	Decision   Decision `json:"decision" db:"decision"`
	Confidence float64  `json:"confidence" db:"confidence"`
	FlagsJSON  string   `json:"flags_json" db:"flags_json"`
	Claimed    bool     `json:"claimed" db:"claimed"`
	CreatedAt  int64    `json:"created_at" db:"created_at"`
}
