package publish

import (
	"testing"

	moderation "github.com/gospelwave/moderation"
)

func TestGetPolicy(t *testing.T) {
	tests := []struct {
		contentType moderation.ContentType
		want        Policy
	}{
		{moderation.ContentMusic, PolicyCreatorOnlyDuringReview},
		{moderation.ContentVideos, PolicyHoldUntilPass},
		{moderation.ContentSermon, PolicyHoldUntilPass},
		{moderation.ContentLyrics, PolicyCreatorOnlyDuringReview},
		{moderation.ContentType("unregistered"), PolicyHoldUntilPass},
	}

	for _, tt := range tests {
		if got := GetPolicy(tt.contentType); got != tt.want {
			t.Errorf("GetPolicy(%q) = %q, want %q", tt.contentType, got, tt.want)
		}
	}
}

func TestCanView(t *testing.T) {
	tests := []struct {
		name     string
		policy   Policy
		decision moderation.Decision
		viewer   ViewerRole
		want     bool
	}{
		{
			name:     "admin sees everything",
			policy:   PolicyHoldUntilPass,
			decision: moderation.DecisionBlock,
			viewer:   ViewerAdmin,
			want:     true,
		},
		{
			name:     "pass is public",
			policy:   PolicyHoldUntilPass,
			decision: moderation.DecisionPass,
			viewer:   ViewerPublic,
			want:     true,
		},
		{
			name:     "hold until pass hides pending from creator",
			policy:   PolicyHoldUntilPass,
			decision: moderation.DecisionPending,
			viewer:   ViewerCreator,
			want:     false,
		},
		{
			name:     "creator only shows pending to creator",
			policy:   PolicyCreatorOnlyDuringReview,
			decision: moderation.DecisionPending,
			viewer:   ViewerCreator,
			want:     true,
		},
		{
			name:     "creator only hides pending from public",
			policy:   PolicyCreatorOnlyDuringReview,
			decision: moderation.DecisionReview,
			viewer:   ViewerPublic,
			want:     false,
		},
		{
			name:     "always listed shows pending to public",
			policy:   PolicyAlwaysListed,
			decision: moderation.DecisionPending,
			viewer:   ViewerPublic,
			want:     true,
		},
		{
			name:     "block hidden under hold until pass",
			policy:   PolicyHoldUntilPass,
			decision: moderation.DecisionBlock,
			viewer:   ViewerCreator,
			want:     false,
		},
		{
			name:     "block visible under always listed",
			policy:   PolicyAlwaysListed,
			decision: moderation.DecisionBlock,
			viewer:   ViewerPublic,
			want:     true,
		},
		{
			name:     "error hidden everywhere",
			policy:   PolicyAlwaysListed,
			decision: moderation.DecisionError,
			viewer:   ViewerCreator,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanView(tt.policy, tt.decision, tt.viewer); got != tt.want {
				t.Errorf("CanView(%q, %v, %q) = %v, want %v", tt.policy, tt.decision, tt.viewer, got, tt.want)
			}
		})
	}
}

func TestSetPolicy(t *testing.T) {
	custom := moderation.ContentType("custom")
	SetPolicy(custom, PolicyAlwaysListed)
	defer delete(PolicyRegistry, custom)

	if got := GetPolicy(custom); got != PolicyAlwaysListed {
		t.Errorf("GetPolicy after SetPolicy = %q, want %q", got, PolicyAlwaysListed)
	}
}
