package language

import (
	"reflect"
	"testing"
)

func TestDefault_Codes(t *testing.T) {
	r := Default()

	want := []string{CodeEnglish, CodeHausa, CodeIgbo, CodePidgin, CodeYoruba}
	got := r.Codes()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}
}

func TestDefault_SameInstance(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different instances")
	}
}

func TestRegistry_IsSupported(t *testing.T) {
	r := Default()

	tests := []struct {
		code string
		want bool
	}{
		{CodeEnglish, true},
		{CodeYoruba, true},
		{CodeIgbo, true},
		{CodeHausa, true},
		{CodePidgin, true},
		{CodeUnknown, false},
		{"FRENCH", false},
		{"yoruba", false}, // codes are case-sensitive
		{"", false},
	}

	for _, tt := range tests {
		if got := r.IsSupported(tt.code); got != tt.want {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestRegistry_Name(t *testing.T) {
	r := Default()

	tests := []struct {
		code string
		want string
	}{
		{CodeEnglish, "English"},
		{CodeYoruba, "Yoruba"},
		{CodePidgin, "Nigerian Pidgin"},
		{CodeUnknown, NameUnknown},
		{"FRENCH", NameUnknown},
	}

	for _, tt := range tests {
		if got := r.Name(tt.code); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestRegistry_GospelKeywords(t *testing.T) {
	r := Default()

	for _, code := range r.Codes() {
		if len(r.GospelKeywords(code)) == 0 {
			t.Errorf("GospelKeywords(%q) is empty", code)
		}
	}

	if kws := r.GospelKeywords("FRENCH"); kws != nil {
		t.Errorf("GospelKeywords for unregistered code = %v, want nil", kws)
	}
}

func TestRegistry_GospelKeywordsCopied(t *testing.T) {
	r := Default()

	first := r.GospelKeywords(CodeEnglish)
	first[0] = "mutated"

	second := r.GospelKeywords(CodeEnglish)
	if second[0] == "mutated" {
		t.Error("GospelKeywords() exposes internal slice")
	}
}

func TestRegistry_ProhibitedTerms(t *testing.T) {
	r := Default()

	terms := r.ProhibitedTerms()
	if len(terms) == 0 {
		t.Fatal("ProhibitedTerms() is empty")
	}

	found := false
	for _, term := range terms {
		if term == "explicit" {
			found = true
			break
		}
	}
	if !found {
		t.Error(`ProhibitedTerms() missing "explicit"`)
	}
}

func TestNew_DuplicateCodesIgnored(t *testing.T) {
	r := New([]Signature{
		{Code: "A", Name: "First"},
		{Code: "A", Name: "Second"},
	}, nil, nil)

	if got := len(r.Codes()); got != 1 {
		t.Errorf("len(Codes()) = %d, want 1", got)
	}
	if got := r.Name("A"); got != "First" {
		t.Errorf("Name(A) = %q, want First", got)
	}
}

func TestRegistry_MarkersAreSingleTokens(t *testing.T) {
	r := Default()

	// Tokenize splits on punctuation, so a marker containing one would be
	// registered in a form no input token can ever equal.
	for _, code := range r.Codes() {
		sig, ok := r.Signature(code)
		if !ok {
			t.Fatalf("Signature(%q) missing", code)
		}
		for _, w := range sig.MarkerWords {
			tokens := Tokenize(w)
			if len(tokens) != 1 {
				t.Errorf("marker %q of %s tokenizes to %v, want one token", w, code, tokens)
				continue
			}
			if !r.isMarker(code, tokens[0]) {
				t.Errorf("isMarker(%q, %q) = false for registered marker", code, tokens[0])
			}
		}
	}
}

func TestRegistry_MarkerMatchesStrippedForm(t *testing.T) {
	r := Default()

	// Marker words registered with diacritics must match input typed without.
	tests := []struct {
		code  string
		token string
		want  bool
	}{
		{CodeYoruba, "olúwa", true},
		{CodeYoruba, "oluwa", true},
		{CodeIgbo, "anyị", true},
		{CodeIgbo, "anyi", true},
		{CodeYoruba, "hello", false},
	}

	for _, tt := range tests {
		if got := r.isMarker(tt.code, tt.token); got != tt.want {
			t.Errorf("isMarker(%q, %q) = %v, want %v", tt.code, tt.token, got, tt.want)
		}
	}
}
