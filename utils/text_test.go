package utils

import "testing"

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{
			name:   "shorter than limit",
			text:   "hello",
			maxLen: 10,
			want:   "hello",
		},
		{
			name:   "exactly at limit",
			text:   "hello",
			maxLen: 5,
			want:   "hello",
		},
		{
			name:   "truncated with ellipsis",
			text:   "hello world",
			maxLen: 8,
			want:   "hello...",
		},
		{
			name:   "tiny limit skips ellipsis",
			text:   "hello",
			maxLen: 2,
			want:   "he",
		},
		{
			name:   "empty",
			text:   "",
			maxLen: 5,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateText(tt.text, tt.maxLen); got != tt.want {
				t.Errorf("TruncateText(%q, %d) = %q, want %q", tt.text, tt.maxLen, got, tt.want)
			}
		})
	}
}
