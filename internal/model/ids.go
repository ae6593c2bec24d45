package model

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

// NewThoughtID returns thought-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits (~1 trillion) of space;
// collisions are treated as practically impossible.
func NewThoughtID() string {
	var b [5]byte // 40 bits -> 8 base32 chars
	// crypto/rand.Read never returns an error (and panics internally if the
	// platform source is broken), so there is no error path to surface.
	_, _ = rand.Read(b[:])
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return "thought-" + strings.ToLower(enc.EncodeToString(b[:]))
}

// NewThought creates a thought with a fresh id.
func NewThought(text string) Thought {
	return Thought{ID: NewThoughtID(), Text: text}
}
