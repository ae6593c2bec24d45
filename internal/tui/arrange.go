package tui

import (
	"fmt"
	"io"
	"strings"

	"sift-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type thoughtListItem struct {
	thought model.Thought
}

func (i thoughtListItem) Title() string       { return i.thought.Text }
func (i thoughtListItem) FilterValue() string { return i.thought.Text }

// compactThoughtDelegate renders one thought per row, padded/cut to the list
// width so the selection background spans the full line.
type compactThoughtDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
}

func newCompactThoughtDelegate() compactThoughtDelegate {
	return compactThoughtDelegate{
		normal:   lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true),
	}
}

func (d compactThoughtDelegate) Height() int                             { return 1 }
func (d compactThoughtDelegate) Spacing() int                            { return 0 }
func (d compactThoughtDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d compactThoughtDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	style := d.normal
	if index == m.Index() {
		style = d.selected
	}

	line := fmt.Sprintf("%2d. ", index+1)
	if t, ok := item.(thoughtListItem); ok {
		line += t.thought.Text
	} else {
		line += fmt.Sprint(item)
	}

	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}

	fmt.Fprint(w, style.Render(line))
}

func newArrangeList() list.Model {
	l := list.New(nil, newCompactThoughtDelegate(), 0, 0)
	// The app renders its own breadcrumb and footer, so keep list chrome off.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetKeys("q")
	return l
}

func (m appModel) updateArrange(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab", "enter":
		m.view = viewAct
		return m, nil

	case "shift+tab", "c":
		m.view = viewCapture
		return m, nil

	case "J", "ctrl+down":
		idx := m.items.Index()
		if m.store.Move(idx, idx+1) {
			m.syncItems()
			if idx+1 < len(m.items.Items()) {
				m.items.Select(idx + 1)
			}
		}
		return m, nil

	case "K", "ctrl+up":
		idx := m.items.Index()
		if idx > 0 && m.store.Move(idx, idx-1) {
			m.syncItems()
			m.items.Select(idx - 1)
		}
		return m, nil

	case "d", "x", "backspace":
		if it, ok := m.items.SelectedItem().(thoughtListItem); ok {
			m.store.DeleteItem(it.thought.ID)
			m.syncItems()
		}
		return m, undoTick()

	case "u":
		m.store.RestoreUndo()
		m.syncItems()
		return m, nil

	case "C":
		m.confirmingClear = true
		m.confirmFocus = confirmFocusCancel
		return m, nil
	}

	var cmd tea.Cmd
	m.items, cmd = m.items.Update(msg)
	return m, cmd
}

func (m appModel) renderArrange() string {
	body := m.items.View()
	if len(m.items.Items()) == 0 {
		body = styleMuted().Render("nothing here yet — capture some thoughts first")
	}

	parts := []string{body, "", m.actionLine()}
	if toast := m.undoToast(); toast != "" {
		parts = append(parts, toast)
	}
	parts = append(parts, "", styleMuted().Render("J/K move · d delete · u undo · C clear all · enter act · shift+tab capture · q quit"))
	return strings.Join(parts, "\n")
}
