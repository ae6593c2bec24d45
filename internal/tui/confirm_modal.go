package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmFocus int

const (
	confirmFocusCancel confirmFocus = iota
	confirmFocusClear
)

func (m appModel) updateConfirmClear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right", "h", "l":
		if m.confirmFocus == confirmFocusCancel {
			m.confirmFocus = confirmFocusClear
		} else {
			m.confirmFocus = confirmFocusCancel
		}
		return m, nil

	case "enter":
		m.confirmingClear = false
		if m.confirmFocus == confirmFocusClear {
			// Confirmed: unconditional and irreversible from here.
			m.store.ClearAll()
			m.syncItems()
			m.view = viewCapture
			return m, m.setFlash("everything cleared")
		}
		return m, nil

	case "esc", "ctrl+g", "ctrl+c":
		m.confirmingClear = false
		return m, nil
	}
	return m, nil
}

func (m appModel) renderConfirmClear() string {
	// No borders: some terminals show background artifacts when nesting
	// bordered components inside a colored modal.
	btnBase := lipgloss.NewStyle().Padding(0, 1).Background(colorControlBg)
	btnActive := btnBase.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)

	cancel := btnBase.Render("Keep everything")
	clear := btnBase.Render("Clear all")
	if m.confirmFocus == confirmFocusCancel {
		cancel = btnActive.Render("Keep everything")
	} else {
		clear = btnActive.Render("Clear all")
	}

	body := strings.Join([]string{
		"Delete the draft, every thought and all saved state?",
		"This cannot be undone.",
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cancel, " ", clear),
		"",
		styleMuted().Render("tab: focus   enter: select   esc: cancel"),
	}, "\n")

	box := lipgloss.NewStyle().Padding(1, 2).Render(body)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
