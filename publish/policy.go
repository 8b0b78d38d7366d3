// Package publish gates upload publication on review decisions.
package publish

import (
	moderation "github.com/gospelwave/moderation"
)

// Policy defines how an upload is listed while its review is in flight
// or after it fails.
type Policy string

const (
	// PolicyHoldUntilPass keeps the upload unlisted until the review passes.
	PolicyHoldUntilPass Policy = "hold_until_pass"

	// PolicyCreatorOnlyDuringReview lists the upload to its creator while
	// the review is pending or queued for human review.
	PolicyCreatorOnlyDuringReview Policy = "creator_only_during_review"

	// PolicyAlwaysListed always lists the upload, relying on downstream
	// takedown for blocked content.
	PolicyAlwaysListed Policy = "always_listed"
)

// ViewerRole represents who is viewing the upload.
type ViewerRole string

const (
	ViewerCreator ViewerRole = "creator" // Upload owner
	ViewerPublic  ViewerRole = "public"  // General public
	ViewerAdmin   ViewerRole = "admin"   // Administrator
)

// PolicyRegistry maps content types to their publication policies.
// Long-form teaching content holds for a clean pass; performance content
// stays visible to its creator while under review.
var PolicyRegistry = map[moderation.ContentType]Policy{
	moderation.ContentMusic:      PolicyCreatorOnlyDuringReview,
	moderation.ContentVideos:     PolicyHoldUntilPass,
	moderation.ContentSermon:     PolicyHoldUntilPass,
	moderation.ContentAudio:      PolicyCreatorOnlyDuringReview,
	moderation.ContentEbook:      PolicyHoldUntilPass,
	moderation.ContentDevotional: PolicyCreatorOnlyDuringReview,
	moderation.ContentPodcast:    PolicyHoldUntilPass,
	moderation.ContentLyrics:     PolicyCreatorOnlyDuringReview,
}

// GetPolicy returns the publication policy for a content type.
func GetPolicy(contentType moderation.ContentType) Policy {
	if policy, ok := PolicyRegistry[contentType]; ok {
		return policy
	}
	return PolicyHoldUntilPass // Default to strictest
}

// SetPolicy sets a custom publication policy for a content type.
func SetPolicy(contentType moderation.ContentType, policy Policy) {
	PolicyRegistry[contentType] = policy
}

// CanView determines whether a viewer can see an upload with the given
// review decision under a policy.
func CanView(policy Policy, decision moderation.Decision, viewer ViewerRole) bool {
	// Admins can always view
	if viewer == ViewerAdmin {
		return true
	}

	switch decision {
	case moderation.DecisionPass:
		return true

	case moderation.DecisionPending, moderation.DecisionReview:
		switch policy {
		case PolicyAlwaysListed:
			return true
		case PolicyCreatorOnlyDuringReview:
			return viewer == ViewerCreator
		default:
			return false
		}

	case moderation.DecisionBlock:
		return policy == PolicyAlwaysListed

	default: // DecisionError
		return false
	}
}
