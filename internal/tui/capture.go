package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateCapture(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+d", "ctrl+s":
		// Commit the draft; the store clears it and the arrange step is the
		// natural next view when anything was committed.
		if m.store.CommitDraft() {
			m.view = viewArrange
		}
		return m, nil

	case "tab":
		// Switch without committing; the draft stays editable and persisted.
		m.view = viewArrange
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	// Every keystroke mirrors into the store; the gateway debounces writes.
	m.store.SetDraft(m.textarea.Value())
	return m, cmd
}

func (m appModel) renderCapture() string {
	help := styleMuted().Render("ctrl+d commit · tab arrange · ctrl+c quit")
	return strings.Join([]string{
		m.textarea.View(),
		"",
		help,
	}, "\n")
}
