package store

import (
	"testing"
	"time"
)

func TestUndo_RestoreReproducesCollection(t *testing.T) {
	s := New(nil, time.Minute)
	s.SetDraft("A\nB\nC\nD")
	s.CommitDraft()
	before := s.Items()

	s.DeleteItem(before[2].ID)
	assertTexts(t, s.Items(), "A", "B", "D")

	if !s.RestoreUndo() {
		t.Fatal("expected restore to succeed")
	}
	after := s.Items()
	if len(after) != len(before) {
		t.Fatalf("expected %d items; got %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("item %d: expected %+v; got %+v (same ids, same order)", i, before[i], after[i])
		}
	}
}

func TestUndo_SecondDeleteOverwritesBuffer(t *testing.T) {
	s := New(nil, time.Minute)
	s.SetDraft("A\nB\nC")
	s.CommitDraft()
	items := s.Items()

	s.DeleteItem(items[0].ID)
	s.DeleteItem(items[2].ID) // single slot: A's restore is permanently lost

	if !s.RestoreUndo() {
		t.Fatal("expected restore to succeed")
	}
	assertTexts(t, s.Items(), "B", "C")
	if s.RestoreUndo() {
		t.Fatal("expected buffer to be empty after restore")
	}
}

func TestUndo_IndexClampsWhenCollectionShrank(t *testing.T) {
	s := New(nil, time.Minute)
	s.SetDraft("A\nB\nC")
	s.CommitDraft()
	items := s.Items()

	// Arm the buffer with B at its pre-removal index 1, then shrink the
	// collection to [A]: the buffered index now equals the length.
	s.DeleteItem(items[2].ID)
	s.DeleteItem(items[1].ID)
	assertTexts(t, s.Items(), "A")

	// min(bufferedIndex, len) clamps the insert to the end.
	if !s.RestoreUndo() {
		t.Fatal("expected restore to succeed")
	}
	assertTexts(t, s.Items(), "A", "B")
}

func TestUndo_Expiry(t *testing.T) {
	s := New(nil, 30*time.Millisecond)
	s.SetDraft("A\nB")
	s.CommitDraft()
	s.DeleteItem(s.Items()[0].ID)

	if _, _, ok := s.PendingUndo(); !ok {
		t.Fatal("expected armed buffer right after delete")
	}

	time.Sleep(120 * time.Millisecond)

	if _, _, ok := s.PendingUndo(); ok {
		t.Fatal("expected buffer to expire")
	}
	if s.RestoreUndo() {
		t.Fatal("expected restore after expiry to be a no-op")
	}
	assertTexts(t, s.Items(), "B")
}

func TestUndo_NewDeleteResetsExpiry(t *testing.T) {
	s := New(nil, 80*time.Millisecond)
	s.SetDraft("A\nB")
	s.CommitDraft()
	items := s.Items()

	s.DeleteItem(items[0].ID)
	time.Sleep(50 * time.Millisecond)
	s.DeleteItem(items[1].ID) // re-arm resets the window
	time.Sleep(50 * time.Millisecond)

	// 100ms after the first delete the buffer must still be armed for the
	// second one.
	it, _, ok := s.PendingUndo()
	if !ok {
		t.Fatal("expected buffer still armed after re-arm")
	}
	if it.ID != items[1].ID {
		t.Fatalf("expected buffer to hold the second delete; got %+v", it)
	}
}

func TestUndo_RestoreWhileEmptyIsNoop(t *testing.T) {
	s := New(nil, time.Minute)
	if s.RestoreUndo() {
		t.Fatal("expected restore on empty buffer to be a no-op")
	}
}

func TestPendingUndo_Countdown(t *testing.T) {
	s := New(nil, time.Minute)
	s.SetDraft("A")
	s.CommitDraft()
	s.DeleteItem(s.Items()[0].ID)

	_, remaining, ok := s.PendingUndo()
	if !ok {
		t.Fatal("expected armed buffer")
	}
	if remaining <= 0 || remaining > time.Minute {
		t.Fatalf("expected remaining within (0, 1m]; got %v", remaining)
	}
}
