package model

// Thought is a single captured line of text.
//
// Identity is the ID: texts may repeat across thoughts and must not be
// collapsed. Text is immutable once the thought is created; editing is
// delete + re-capture.
type Thought struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// State is the full persisted/in-memory application state: the uncommitted
// draft plus the ordered thought collection. Order is meaningful (display
// order and the action selector's tie-break).
type State struct {
	Draft string    `json:"draft"`
	Items []Thought `json:"items"`
}

// Clone returns a deep copy. Snapshots are handed to timers and subscribers,
// so a shared backing array would be a hazard.
func (s State) Clone() State {
	out := State{Draft: s.Draft}
	if len(s.Items) > 0 {
		out.Items = make([]Thought, len(s.Items))
		copy(out.Items, s.Items)
	}
	return out
}

// Texts returns the thought texts in collection order.
func (s State) Texts() []string {
	out := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		out = append(out, it.Text)
	}
	return out
}
