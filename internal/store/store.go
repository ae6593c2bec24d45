// Package store owns the authoritative ordered thought collection and the
// in-progress draft. All mutations run to completion under one lock, notify
// subscribers, and hand a state snapshot to the persister.
package store

import (
	"sync"
	"time"

	"sift-cli/internal/model"
	"sift-cli/internal/segment"
)

// Persister receives state snapshots after mutations. Writes are expected to
// be debounced and best-effort on the persister side; the store never waits
// on them.
type Persister interface {
	Save(model.State)
	Erase()
}

// DefaultUndoWindow is how long a deleted thought stays restorable.
const DefaultUndoWindow = 4 * time.Second

type Store struct {
	mu    sync.Mutex
	draft string
	items []model.Thought

	persister Persister
	subs      []func()

	undo          *pendingUndo
	undoTimer     *time.Timer
	undoGen       int
	undoWindow    time.Duration
	undoExpiresAt time.Time
}

func New(p Persister, undoWindow time.Duration) *Store {
	if undoWindow <= 0 {
		undoWindow = DefaultUndoWindow
	}
	return &Store{persister: p, undoWindow: undoWindow}
}

// Seed replaces the store contents with previously persisted state. Called
// once at startup, before subscribers attach; it neither notifies nor saves.
func (s *Store) Seed(st model.State) {
	st = st.Clone()
	s.mu.Lock()
	s.draft = st.Draft
	s.items = st.Items
	s.mu.Unlock()
}

// Subscribe registers fn to run after every mutation (including undo
// expiry). Subscribers may be invoked from a timer goroutine.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Items returns a copy of the ordered collection.
func (s *Store) Items() []model.Thought {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Thought, len(s.items))
	copy(out, s.items)
	return out
}

// Texts returns the thought texts in collection order.
func (s *Store) Texts() []string {
	return s.Snapshot().Texts()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) Snapshot() model.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() model.State {
	return model.State{Draft: s.draft, Items: s.items}.Clone()
}

// SetDraft replaces the draft text.
func (s *Store) SetDraft(text string) {
	s.mu.Lock()
	if s.draft == text {
		s.mu.Unlock()
		return
	}
	s.draft = text
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.changed(snap)
}

// CommitDraft segments the draft into thoughts, assigns fresh ids, appends
// them in draft order and clears the draft. Reports whether anything was
// committed so the caller can advance to the arrange step.
func (s *Store) CommitDraft() bool {
	s.mu.Lock()
	lines := segment.Lines(s.draft)
	if len(lines) == 0 {
		s.mu.Unlock()
		return false
	}
	for _, line := range lines {
		s.items = append(s.items, model.NewThought(line))
	}
	s.draft = ""
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.changed(snap)
	return true
}

// DeleteItem removes the thought with the given id and arms the undo buffer
// with a copy. Unknown ids are a silent no-op: stale or duplicate deletes
// must be tolerated.
func (s *Store) DeleteItem(id string) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.items {
		if s.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.armUndoLocked(removed, idx)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.changed(snap)
	return true
}

// Move relocates the thought at from to index to, preserving every other
// thought's relative order. Indices are interpreted after removal, so moving
// 0 to 2 in [A B C D] yields [B C A D]. Out-of-range from is a no-op; to is
// clamped.
func (s *Store) Move(from, to int) bool {
	s.mu.Lock()
	if from < 0 || from >= len(s.items) {
		s.mu.Unlock()
		return false
	}
	it := s.items[from]
	rest := append(s.items[:from], s.items[from+1:]...)
	if to < 0 {
		to = 0
	}
	if to > len(rest) {
		to = len(rest)
	}
	s.items = append(rest[:to], append([]model.Thought{it}, rest[to:]...)...)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.changed(snap)
	return true
}

// Reorder is Move addressed by id. Unknown ids are a no-op.
func (s *Store) Reorder(id string, to int) bool {
	s.mu.Lock()
	from := -1
	for i := range s.items {
		if s.items[i].ID == id {
			from = i
			break
		}
	}
	s.mu.Unlock()
	if from < 0 {
		return false
	}
	return s.Move(from, to)
}

// ClearAll empties the draft and collection and erases all persisted state,
// current and legacy keys included. Irreversible; callers must obtain
// explicit confirmation before invoking it.
func (s *Store) ClearAll() {
	s.mu.Lock()
	s.draft = ""
	s.items = nil
	s.disarmUndoLocked()
	s.mu.Unlock()
	if s.persister != nil {
		s.persister.Erase()
	}
	s.notify()
}

// changed runs with the lock released: the persister debounces internally
// and subscribers may call back into the store.
func (s *Store) changed(snap model.State) {
	if s.persister != nil {
		s.persister.Save(snap)
	}
	s.notify()
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
