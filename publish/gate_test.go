package publish

import (
	"testing"

	moderation "github.com/gospelwave/moderation"
)

func TestGate_Evaluate(t *testing.T) {
	g := NewGate()

	tests := []struct {
		name     string
		ct       moderation.ContentType
		decision moderation.Decision
		viewer   ViewerRole
		want     Publication
	}{
		{
			name:     "passed music is listed",
			ct:       moderation.ContentMusic,
			decision: moderation.DecisionPass,
			viewer:   ViewerPublic,
			want:     Publication{Listed: true},
		},
		{
			name:     "pending music listed to creator with notice",
			ct:       moderation.ContentMusic,
			decision: moderation.DecisionPending,
			viewer:   ViewerCreator,
			want:     Publication{Listed: true, Held: true, Message: "Under review"},
		},
		{
			name:     "pending music hidden from public",
			ct:       moderation.ContentMusic,
			decision: moderation.DecisionPending,
			viewer:   ViewerPublic,
			want:     Publication{Listed: false, Held: true, Message: "Under review"},
		},
		{
			name:     "pending video hidden from creator",
			ct:       moderation.ContentVideos,
			decision: moderation.DecisionReview,
			viewer:   ViewerCreator,
			want:     Publication{Listed: false, Held: true, Message: "Under review"},
		},
		{
			name:     "blocked video carries takedown message",
			ct:       moderation.ContentVideos,
			decision: moderation.DecisionBlock,
			viewer:   ViewerPublic,
			want:     Publication{Listed: false, Message: "This video is unavailable"},
		},
		{
			name:     "blocked unregistered type uses generic message",
			ct:       moderation.ContentDevotional,
			decision: moderation.DecisionBlock,
			viewer:   ViewerPublic,
			want:     Publication{Listed: false, Message: "This content is unavailable"},
		},
		{
			name:     "admin sees blocked content",
			ct:       moderation.ContentVideos,
			decision: moderation.DecisionBlock,
			viewer:   ViewerAdmin,
			want:     Publication{Listed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Evaluate(tt.ct, tt.decision, tt.viewer); got != tt.want {
				t.Errorf("Evaluate(%q, %v, %q) = %+v, want %+v", tt.ct, tt.decision, tt.viewer, got, tt.want)
			}
		})
	}
}

func TestGate_SetBlockedMessage(t *testing.T) {
	g := NewGate()
	g.SetBlockedMessage(moderation.ContentPodcast, "Episode removed")

	got := g.Evaluate(moderation.ContentPodcast, moderation.DecisionBlock, ViewerPublic)
	if got.Message != "Episode removed" {
		t.Errorf("Message = %q, want custom blocked message", got.Message)
	}
}

func TestGate_EvaluateReview(t *testing.T) {
	g := NewGate()

	if got := g.EvaluateReview(nil, ViewerPublic); !got.Listed {
		t.Error("EvaluateReview(nil) not listed, want legacy uploads listed")
	}

	review := &moderation.Review{
		ContentType: moderation.ContentMusic,
		Decision:    moderation.DecisionPass,
	}
	if got := g.EvaluateReview(review, ViewerPublic); !got.Listed {
		t.Error("EvaluateReview(passed review) not listed")
	}
}
