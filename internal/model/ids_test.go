package model

import (
	"strings"
	"testing"
)

func TestNewThoughtID_Shape(t *testing.T) {
	id := NewThoughtID()
	if !strings.HasPrefix(id, "thought-") {
		t.Fatalf("expected thought- prefix; got %q", id)
	}
	suffix := strings.TrimPrefix(id, "thought-")
	if len(suffix) != 8 {
		t.Fatalf("expected 8-char suffix; got %q", suffix)
	}
	if suffix != strings.ToLower(suffix) {
		t.Fatalf("expected lowercase suffix; got %q", suffix)
	}
}

func TestNewThoughtID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewThoughtID()
		if seen[id] {
			t.Fatalf("duplicate id after %d draws: %s", i, id)
		}
		seen[id] = true
	}
}
