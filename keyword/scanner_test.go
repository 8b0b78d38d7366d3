package keyword

import (
	"testing"

	"github.com/gospelwave/moderation/language"
)

func TestScanner_ContainsGospelKeywords(t *testing.T) {
	s := NewScanner(language.Default())

	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "english keyword",
			text: "a beautiful worship session",
			want: true,
		},
		{
			name: "case insensitive",
			text: "JESUS IS KING",
			want: true,
		},
		{
			name: "yoruba with diacritics",
			text: "orin fún olúwa",
			want: true,
		},
		{
			name: "yoruba without diacritics",
			text: "orin fun oluwa",
			want: true,
		},
		{
			name: "igbo",
			text: "chineke bu eze",
			want: true,
		},
		{
			name: "hausa",
			text: "godiya ga ubangiji",
			want: true,
		},
		{
			name: "multi word phrase",
			text: "filled with the holy spirit",
			want: true,
		},
		{
			name: "pidgin phrase",
			text: "na baba god dey run am",
			want: true,
		},
		{
			name: "whole word only",
			text: "godliness and ungodly talk",
			want: false,
		},
		{
			name: "no keywords",
			text: "buy cheap watches online now",
			want: false,
		},
		{
			name: "keyword with punctuation",
			text: "Hallelujah! What a morning.",
			want: true,
		},
		{
			name: "empty",
			text: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ContainsGospelKeywords(tt.text); got != tt.want {
				t.Errorf("ContainsGospelKeywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestScanner_ContainsProhibitedTerms(t *testing.T) {
	s := NewScanner(language.Default())

	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "single term",
			text: "this video contains explicit scenes",
			want: true,
		},
		{
			name: "case insensitive",
			text: "EXPLICIT content",
			want: true,
		},
		{
			name: "multi word term",
			text: "the yahoo yahoo boys are at it",
			want: true,
		},
		{
			name: "whole word only",
			text: "he explained it explicitly",
			want: false,
		},
		{
			name: "clean text",
			text: "a lovely gospel medley",
			want: false,
		},
		{
			name: "empty",
			text: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ContainsProhibitedTerms(tt.text); got != tt.want {
				t.Errorf("ContainsProhibitedTerms(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestScanner_PreNormalizedInputEquivalent(t *testing.T) {
	s := NewScanner(language.Default())

	raw := "Hallelujah, Praise!"
	normalized := language.Normalize(raw)

	if s.ContainsGospelKeywords(raw) != s.ContainsGospelKeywords(normalized) {
		t.Error("raw and pre-normalized input disagree")
	}
}
