package tui

import (
	"strings"

	"sift-cli/internal/share"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateAct(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab", "c":
		m.view = viewCapture
		return m, nil

	case "shift+tab", "a", "esc":
		m.view = viewArrange
		return m, nil

	case "y":
		if err := share.CopyToClipboard(m.exportMarkdown()); err != nil {
			return m, m.setFlash("clipboard: " + err.Error())
		}
		return m, m.setFlash("copied to clipboard")
	}
	return m, nil
}

func (m appModel) renderAct() string {
	w := m.width - 6
	if w < 20 {
		w = 60
	}
	return strings.Join([]string{
		renderMarkdown(m.exportMarkdown(), w),
		"",
		styleMuted().Render("y copy · shift+tab arrange · tab capture · q quit"),
	}, "\n")
}
