// Package segment splits free-form multi-line text into thought lines.
package segment

import "strings"

// Lines splits raw on line breaks (tolerating \r\n), trims each line and
// drops empty ones. Order and multiplicity are preserved: duplicate lines
// stay duplicated, since thoughts are disambiguated by id, not by text.
func Lines(raw string) []string {
	if raw == "" {
		return nil
	}
	out := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// UniqueLines is the deduplicating variant used only when migrating the
// legacy persisted format: that format predates ids, so collapsing duplicate
// texts was the only way to keep deletes unambiguous. First occurrence wins;
// order is otherwise preserved.
func UniqueLines(raw string) []string {
	lines := Lines(raw)
	if len(lines) == 0 {
		return lines
	}
	seen := map[string]bool{}
	out := lines[:0]
	for _, line := range lines {
		if seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
	}
	return out
}
