package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashText returns the SHA256 hash of the text content.
func HashText(text string) string {
	h := sha256.New()
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// ContentHash returns a deduplication key over an upload's text fields.
// Fields are joined with a unit separator so swapping content between
// fields produces a different hash.
func ContentHash(transcript, title, description string) string {
	h := sha256.New()
	h.Write([]byte(transcript))
	h.Write([]byte{0x1f})
	h.Write([]byte(title))
	h.Write([]byte{0x1f})
	h.Write([]byte(description))
	return hex.EncodeToString(h.Sum(nil))
}
