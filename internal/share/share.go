// Package share formats the current action and thought list for export.
package share

import "strings"

// Markdown renders the share format: a header line, the action text, a blank
// line, a header line, then one bullet per thought in collection order.
func Markdown(action string, thoughts []string) string {
	lines := []string{"## Next action"}
	if strings.TrimSpace(action) != "" {
		lines = append(lines, action)
	} else {
		lines = append(lines, "(nothing yet)")
	}
	lines = append(lines, "", "## Thoughts")
	for _, t := range thoughts {
		lines = append(lines, "- "+t)
	}
	return strings.Join(lines, "\n")
}
