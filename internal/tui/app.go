// Package tui is the interactive front: three views (capture, arrange, act)
// over the shared item store.
package tui

import (
	"fmt"
	"strings"
	"time"

	"sift-cli/internal/action"
	"sift-cli/internal/share"
	"sift-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type view int

const (
	viewCapture view = iota
	viewArrange
	viewAct
)

// storeChangedMsg arrives whenever the store mutated (including undo expiry,
// which fires from a timer goroutine).
type storeChangedMsg struct{}

type undoTickMsg struct{}

type flashDoneMsg struct{ seq int }

type appModel struct {
	store  *store.Store
	policy action.Policy

	width  int
	height int

	view view

	textarea textarea.Model
	items    list.Model

	confirmingClear bool
	confirmFocus    confirmFocus

	flash    string
	flashSeq int
}

// Run starts the TUI over an already-seeded store.
func Run(st *store.Store, policy action.Policy) error {
	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(st, policy)
	p := tea.NewProgram(m, tea.WithAltScreen())
	// Store changes (including timer-driven undo expiry) are delivered as
	// messages so all UI updates stay on the program loop.
	st.Subscribe(func() { p.Send(storeChangedMsg{}) })
	_, err := p.Run()
	return err
}

func newAppModel(st *store.Store, policy action.Policy) appModel {
	m := appModel{store: st, policy: policy, view: viewCapture}

	m.textarea = textarea.New()
	m.textarea.Placeholder = "One thought per line…"
	m.textarea.CharLimit = 0
	m.textarea.SetWidth(72)
	m.textarea.SetHeight(10)
	m.textarea.ShowLineNumbers = false
	m.textarea.SetValue(st.Draft())
	m.textarea.Focus()

	m.items = newArrangeList()
	m.syncItems()

	// Resume where the user left off: with committed thoughts, arranging is
	// the more likely next step.
	if st.Len() > 0 {
		m.view = viewArrange
	}
	return m
}

func (m appModel) Init() tea.Cmd { return textarea.Blink }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case storeChangedMsg:
		m.syncItems()
		if m.store.Draft() != m.textarea.Value() {
			m.textarea.SetValue(m.store.Draft())
		}
		if _, _, ok := m.store.PendingUndo(); ok {
			return m, undoTick()
		}
		return m, nil

	case undoTickMsg:
		if _, _, ok := m.store.PendingUndo(); ok {
			return m, undoTick()
		}
		return m, nil

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.confirmingClear {
			return m.updateConfirmClear(msg)
		}
		switch m.view {
		case viewCapture:
			return m.updateCapture(msg)
		case viewArrange:
			return m.updateArrange(msg)
		case viewAct:
			return m.updateAct(msg)
		}
	}
	return m, nil
}

func (m *appModel) resize() {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	m.textarea.SetWidth(w)
	m.textarea.SetHeight(h)
	m.items.SetSize(m.width-2, h)
}

func (m *appModel) syncItems() {
	its := m.store.Items()
	listItems := make([]list.Item, 0, len(its))
	for _, it := range its {
		listItems = append(listItems, thoughtListItem{thought: it})
	}
	idx := m.items.Index()
	m.items.SetItems(listItems)
	if idx >= len(listItems) {
		idx = len(listItems) - 1
	}
	if idx >= 0 {
		m.items.Select(idx)
	}
}

func (m *appModel) setFlash(s string) tea.Cmd {
	m.flash = s
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}

func undoTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg { return undoTickMsg{} })
}

func (m appModel) View() string {
	if m.confirmingClear {
		return m.renderConfirmClear()
	}

	var body string
	switch m.view {
	case viewCapture:
		body = m.renderCapture()
	case viewArrange:
		body = m.renderArrange()
	case viewAct:
		body = m.renderAct()
	}

	parts := []string{m.breadcrumb(), "", body}
	if m.flash != "" {
		parts = append(parts, "", styleFlash().Render(m.flash))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(parts, "\n"))
}

func (m appModel) breadcrumb() string {
	names := []string{"capture", "arrange", "act"}
	out := make([]string, len(names))
	for i, n := range names {
		if view(i) == m.view {
			out[i] = styleBreadcrumbActive().Render(n)
		} else {
			out[i] = styleMuted().Render(n)
		}
	}
	return "sift · " + strings.Join(out, styleMuted().Render(" › "))
}

// actionLine recomputes the suggestion on every render; it is derived state,
// never stored.
func (m appModel) actionLine() string {
	a := m.policy.Select(m.store.Texts())
	if a == "" {
		return styleMuted().Render("no action yet")
	}
	return styleAction().Render("→ " + a)
}

func (m appModel) exportMarkdown() string {
	texts := m.store.Texts()
	return share.Markdown(m.policy.Select(texts), texts)
}

func (m appModel) undoToast() string {
	it, remaining, ok := m.store.PendingUndo()
	if !ok {
		return ""
	}
	secs := int(remaining/time.Second) + 1
	return styleToast().Render(fmt.Sprintf("deleted %q — u restores (%ds)", it.Text, secs))
}
