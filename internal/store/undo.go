package store

import (
	"time"

	"sift-cli/internal/model"
)

// pendingUndo is the single-slot undo buffer: the most recently deleted
// thought (a copy, so later mutations cannot corrupt it) and the index it
// must be reinserted at. A second delete overwrites the slot; the previous
// pending restore is permanently lost.
type pendingUndo struct {
	item  model.Thought
	index int
}

func (s *Store) armUndoLocked(it model.Thought, index int) {
	s.undo = &pendingUndo{item: it, index: index}
	s.undoExpiresAt = time.Now().Add(s.undoWindow)
	if s.undoTimer != nil {
		s.undoTimer.Stop()
	}
	s.undoGen++
	gen := s.undoGen
	s.undoTimer = time.AfterFunc(s.undoWindow, func() { s.expireUndo(gen) })
}

func (s *Store) disarmUndoLocked() {
	s.undo = nil
	if s.undoTimer != nil {
		s.undoTimer.Stop()
		s.undoTimer = nil
	}
	s.undoGen++
}

// expireUndo fires from the undo timer. The generation check makes a stale
// timer (superseded by a newer delete or a restore) a no-op.
func (s *Store) expireUndo(gen int) {
	s.mu.Lock()
	if gen != s.undoGen || s.undo == nil {
		s.mu.Unlock()
		return
	}
	s.undo = nil
	s.undoTimer = nil
	s.mu.Unlock()
	s.notify()
}

// RestoreUndo reinserts the buffered thought at min(bufferedIndex, len); the
// clamp covers the case where the collection shrank further since the
// delete. No-op when nothing is pending.
func (s *Store) RestoreUndo() bool {
	s.mu.Lock()
	if s.undo == nil {
		s.mu.Unlock()
		return false
	}
	it, idx := s.undo.item, s.undo.index
	s.disarmUndoLocked()
	if idx > len(s.items) {
		idx = len(s.items)
	}
	s.items = append(s.items[:idx], append([]model.Thought{it}, s.items[idx:]...)...)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.changed(snap)
	return true
}

// PendingUndo reports the armed buffer, if any, and how long until it
// expires (for the restore toast countdown).
func (s *Store) PendingUndo() (model.Thought, time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.undo == nil {
		return model.Thought{}, 0, false
	}
	remaining := time.Until(s.undoExpiresAt)
	if remaining < 0 {
		remaining = 0
	}
	return s.undo.item, remaining, true
}
