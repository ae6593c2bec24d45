// Package action derives a single suggested next action from the ordered
// thought texts. The derivation is pure and cheap, so it is recomputed on
// every read rather than cached or persisted.
package action

import "strings"

// Policy holds the actionable-marker vocabulary. The trigger words are
// provisional (they came from hand-picked capture habits), so they are
// configuration rather than constants.
type Policy struct {
	Keywords []string
}

// DefaultPolicy returns the reference trigger set: an explicit TODO tag plus
// the Japanese do / go-do verb markers.
func DefaultPolicy() Policy {
	return Policy{Keywords: []string{"TODO", "やる", "する", "行く"}}
}

// Select picks at most one action from thoughts, scanning in collection
// order with first-match-wins priority:
//
//  1. first thought containing an actionable keyword
//  2. first thought containing a question mark (? or ？)
//  3. the first thought
//  4. "" when there are no thoughts
func (p Policy) Select(thoughts []string) string {
	for _, t := range thoughts {
		for _, kw := range p.Keywords {
			if kw != "" && strings.Contains(t, kw) {
				return t
			}
		}
	}
	for _, t := range thoughts {
		if strings.ContainsAny(t, "?？") {
			return t
		}
	}
	if len(thoughts) > 0 {
		return thoughts[0]
	}
	return ""
}
