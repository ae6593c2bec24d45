package persist

import (
	"encoding/json"
	"sync"
	"time"

	"sift-cli/internal/model"
	"sift-cli/internal/segment"
)

const (
	// CurrentKey holds the versioned JSON blob: {"draft":..., "items":[...]}.
	CurrentKey = "state.v2"
	// LegacyKey holds the pre-versioning format: raw newline-delimited text,
	// no ids. Only consulted when no CurrentKey blob exists.
	LegacyKey = "state.v1"

	// DefaultDebounce bounds storage writes regardless of keystroke rate.
	DefaultDebounce = 300 * time.Millisecond
)

// Gateway serializes state to a KV slot. Saves are debounced with
// cancel-on-supersede semantics: only the most recent state within a quiet
// window is written. Persistence is best-effort; read and write failures
// never propagate to the in-memory session.
type Gateway struct {
	kv       KV
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *model.State
}

func NewGateway(kv KV, debounce time.Duration) *Gateway {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Gateway{kv: kv, debounce: debounce}
}

// Load reads the persisted state. Preference order: current key, then legacy
// key (migrating it), then a fresh empty state. Corrupt or unreadable data
// must never fail startup, so every error path degrades to empty.
func (g *Gateway) Load() model.State {
	if raw, ok, err := g.kv.Get(CurrentKey); err == nil && ok {
		return decodeState(raw)
	}
	raw, ok, err := g.kv.Get(LegacyKey)
	if err != nil || !ok {
		return model.State{}
	}

	// One-time legacy migration. The legacy format predates ids, so
	// duplicate lines are collapsed (the only way deletes stayed
	// unambiguous back then); fresh ids are synthesized per line.
	st := model.State{}
	for _, line := range segment.UniqueLines(raw) {
		st.Items = append(st.Items, model.NewThought(line))
	}
	// Drop the legacy key only after the new format is safely written.
	if err := g.writeState(st); err == nil {
		_ = g.kv.Delete(LegacyKey)
	}
	return st
}

// Save schedules a debounced write of st. A newer Save cancels the pending
// one; call Flush to force the write (e.g. on process exit).
func (g *Gateway) Save(st model.State) {
	st = st.Clone()
	g.mu.Lock()
	g.pending = &st
	if g.timer != nil {
		g.timer.Stop()
	}
	g.timer = time.AfterFunc(g.debounce, g.Flush)
	g.mu.Unlock()
}

// Flush writes any pending state immediately. Write failures (quota,
// disabled storage) are swallowed: the in-memory session is the truth.
func (g *Gateway) Flush() {
	g.mu.Lock()
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	st := g.pending
	g.pending = nil
	g.mu.Unlock()
	if st == nil {
		return
	}
	_ = g.writeState(*st)
}

// Erase removes both current and legacy keys and cancels any pending save.
func (g *Gateway) Erase() {
	g.mu.Lock()
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.pending = nil
	g.mu.Unlock()
	_ = g.kv.Delete(CurrentKey)
	_ = g.kv.Delete(LegacyKey)
}

// Close flushes pending state and closes the underlying KV.
func (g *Gateway) Close() error {
	g.Flush()
	return g.kv.Close()
}

func (g *Gateway) writeState(st model.State) error {
	if st.Items == nil {
		st.Items = []model.Thought{}
	}
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return g.kv.Set(CurrentKey, string(b))
}

// wireState decodes the blob leniently: a malformed draft degrades to "",
// and each malformed item is dropped rather than aborting the whole load.
type wireState struct {
	Draft json.RawMessage   `json:"draft"`
	Items []json.RawMessage `json:"items"`
}

func decodeState(raw string) model.State {
	var w wireState
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return model.State{}
	}
	st := model.State{}
	if len(w.Draft) > 0 {
		var d string
		if err := json.Unmarshal(w.Draft, &d); err == nil {
			st.Draft = d
		}
	}
	seen := map[string]bool{}
	for _, itemRaw := range w.Items {
		var it model.Thought
		if err := json.Unmarshal(itemRaw, &it); err != nil {
			continue
		}
		if it.ID == "" || seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		st.Items = append(st.Items, it)
	}
	return st
}
