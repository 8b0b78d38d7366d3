// Package moderation classifies user-submitted text for a gospel content
// upload pipeline: it detects which supported language the text is written
// in and decides whether the text signals permissible devotional content,
// producing an approval decision with a confidence score and diagnostic
// flags. The core classifier is deterministic and performs no I/O; the
// surrounding client, provider, and store packages supply optional cloud
// screening and persistence.
package moderation

// ContentType represents the kind of content being uploaded.
type ContentType string

const (
	ContentMusic      ContentType = "music"
	ContentVideos     ContentType = "videos"
	ContentSermon     ContentType = "sermon"
	ContentAudio      ContentType = "audio"
	ContentEbook      ContentType = "ebook"
	ContentDevotional ContentType = "devotional"
	ContentPodcast    ContentType = "podcast"
	ContentLyrics     ContentType = "lyrics"
)

// KnownContentTypes lists every content type the upload pipeline accepts.
var KnownContentTypes = map[ContentType]bool{
	ContentMusic:      true,
	ContentVideos:     true,
	ContentSermon:     true,
	ContentAudio:      true,
	ContentEbook:      true,
	ContentDevotional: true,
	ContentPodcast:    true,
	ContentLyrics:     true,
}

// IsKnownContentType reports whether ct is a content type the pipeline accepts.
func IsKnownContentType(ct ContentType) bool {
	return KnownContentTypes[ct]
}

// Flag is a diagnostic flag attached to a moderation result.
// The vocabulary is closed; callers can rely on exactly these values.
type Flag string

const (
	// FlagInappropriateContent marks content rejected by the prohibited-term gate.
	FlagInappropriateContent Flag = "inappropriate_content"

	// FlagNonGospelContent marks content with no devotional signal.
	FlagNonGospelContent Flag = "non_gospel_content"

	// FlagInsufficientTranscript marks requests where no usable transcript was
	// supplied and the decision was driven by title/description alone.
	FlagInsufficientTranscript Flag = "insufficient_transcript"

	// FlagInvalidInput marks malformed requests coerced to a safe rejection.
	FlagInvalidInput Flag = "invalid_input"
)

// Decision represents the pipeline-level outcome for an upload.
type Decision string

const (
	DecisionPending Decision = "pending" // Awaiting review
	DecisionPass    Decision = "pass"    // Content approved for publication
	DecisionReview  Decision = "review"  // Queued for human review
	DecisionBlock   Decision = "block"   // Content quarantined
	DecisionError   Decision = "error"   // Review failed with error
)

// ReviewStatus represents the lifecycle status of a stored review record.
type ReviewStatus string

const (
	StatusPending ReviewStatus = "pending"
	StatusRunning ReviewStatus = "running"
	StatusDone    ReviewStatus = "done"
	StatusFailed  ReviewStatus = "failed"
)

// RiskLevel represents the severity of a violation reported by a provider.
type RiskLevel int

const (
	RiskLow RiskLevel = iota + 1
	RiskMedium
	RiskHigh
	RiskSevere
)

// String returns the string representation of RiskLevel.
func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	case RiskSevere:
		return "severe"
	default:
		return "unknown"
	}
}
