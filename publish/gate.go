package publish

import (
	moderation "github.com/gospelwave/moderation"
)

// Publication is the listing state of one upload for one viewer.
type Publication struct {
	Listed  bool   // Whether the upload appears for this viewer
	Held    bool   // Whether the upload is held pending review
	Message string // Optional listing message (e.g. "Under review")
}

// Gate evaluates review decisions into publication states.
type Gate struct {
	blockedMessages map[moderation.ContentType]string
}

// NewGate creates a gate with default messages.
func NewGate() *Gate {
	return &Gate{
		blockedMessages: map[moderation.ContentType]string{
			moderation.ContentMusic:  "This track is unavailable",
			moderation.ContentVideos: "This video is unavailable",
			moderation.ContentSermon: "This sermon is unavailable",
			moderation.ContentEbook:  "This book is unavailable",
		},
	}
}

// SetBlockedMessage sets the blocked message for a content type.
func (g *Gate) SetBlockedMessage(contentType moderation.ContentType, message string) {
	g.blockedMessages[contentType] = message
}

// Evaluate computes the publication state of an upload for a viewer.
func (g *Gate) Evaluate(contentType moderation.ContentType, decision moderation.Decision, viewer ViewerRole) Publication {
	policy := GetPolicy(contentType)

	if !CanView(policy, decision, viewer) {
		return Publication{
			Listed:  false,
			Held:    decision == moderation.DecisionPending || decision == moderation.DecisionReview,
			Message: g.blockedMessage(contentType, decision),
		}
	}

	pub := Publication{Listed: true}
	if decision == moderation.DecisionPending || decision == moderation.DecisionReview {
		pub.Held = true
		pub.Message = "Under review"
	}
	return pub
}

// EvaluateReview computes the publication state from a stored review record.
func (g *Gate) EvaluateReview(review *moderation.Review, viewer ViewerRole) Publication {
	if review == nil {
		// Unreviewed legacy uploads stay listed.
		return Publication{Listed: true}
	}
	return g.Evaluate(review.ContentType, review.Decision, viewer)
}

func (g *Gate) blockedMessage(contentType moderation.ContentType, decision moderation.Decision) string {
	if decision == moderation.DecisionPending || decision == moderation.DecisionReview {
		return "Under review"
	}
	if msg, ok := g.blockedMessages[contentType]; ok {
		return msg
	}
	return "This content is unavailable"
}
