package utils

import "testing"

func TestHashText(t *testing.T) {
	a := HashText("praise the lord")
	b := HashText("praise the lord")
	c := HashText("praise the Lord")

	if a != b {
		t.Error("HashText not deterministic")
	}
	if a == c {
		t.Error("HashText collided for different input")
	}
	if len(a) != 64 {
		t.Errorf("len(HashText()) = %d, want 64 hex chars", len(a))
	}
}

func TestContentHash_FieldBoundaries(t *testing.T) {
	// Moving text between fields must change the hash, otherwise
	// deduplication would conflate distinct uploads.
	a := ContentHash("ab", "c", "")
	b := ContentHash("a", "bc", "")
	if a == b {
		t.Error("ContentHash ignores field boundaries")
	}

	if ContentHash("t", "x", "y") != ContentHash("t", "x", "y") {
		t.Error("ContentHash not deterministic")
	}
}
