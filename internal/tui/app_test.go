package tui

import (
	"strings"
	"testing"
	"time"

	"sift-cli/internal/action"
	"sift-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T, thoughts ...string) appModel {
	t.Helper()
	st := store.New(nil, time.Minute)
	if len(thoughts) > 0 {
		st.SetDraft(strings.Join(thoughts, "\n"))
		st.CommitDraft()
	}
	return newAppModel(st, action.DefaultPolicy())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewAppModel_StartView(t *testing.T) {
	if m := newTestModel(t); m.view != viewCapture {
		t.Fatalf("expected capture view for empty store; got %d", m.view)
	}
	if m := newTestModel(t, "a"); m.view != viewArrange {
		t.Fatalf("expected arrange view with items; got %d", m.view)
	}
}

func TestArrange_DeleteAndUndo(t *testing.T) {
	m := newTestModel(t, "a", "b", "c")

	mm, _ := m.updateArrange(keyRunes("d"))
	m = mm.(appModel)
	if m.store.Len() != 2 {
		t.Fatalf("expected 2 items after delete; got %d", m.store.Len())
	}
	if m.undoToast() == "" {
		t.Fatal("expected undo toast while armed")
	}

	mm, _ = m.updateArrange(keyRunes("u"))
	m = mm.(appModel)
	if m.store.Len() != 3 {
		t.Fatalf("expected 3 items after undo; got %d", m.store.Len())
	}
	if m.undoToast() != "" {
		t.Fatal("expected no toast after restore")
	}
}

func TestArrange_MoveFollowsCursor(t *testing.T) {
	m := newTestModel(t, "a", "b", "c")
	m.items.Select(0)

	mm, _ := m.updateArrange(keyRunes("J"))
	m = mm.(appModel)
	if got := m.store.Texts(); got[0] != "b" || got[1] != "a" {
		t.Fatalf("expected [b a c]; got %v", got)
	}
	if m.items.Index() != 1 {
		t.Fatalf("expected cursor to follow item to 1; got %d", m.items.Index())
	}
}

func TestConfirmClear_CancelKeepsItems(t *testing.T) {
	m := newTestModel(t, "a", "b")

	mm, _ := m.updateArrange(keyRunes("C"))
	m = mm.(appModel)
	if !m.confirmingClear {
		t.Fatal("expected confirm modal")
	}

	mm, _ = m.updateConfirmClear(tea.KeyMsg{Type: tea.KeyEnter})
	m = mm.(appModel)
	if m.confirmingClear {
		t.Fatal("expected modal closed")
	}
	if m.store.Len() != 2 {
		t.Fatalf("expected items kept on cancel; got %d", m.store.Len())
	}
}

func TestConfirmClear_ConfirmClears(t *testing.T) {
	m := newTestModel(t, "a", "b")

	mm, _ := m.updateArrange(keyRunes("C"))
	m = mm.(appModel)
	mm, _ = m.updateConfirmClear(tea.KeyMsg{Type: tea.KeyTab})
	m = mm.(appModel)
	mm, _ = m.updateConfirmClear(tea.KeyMsg{Type: tea.KeyEnter})
	m = mm.(appModel)

	if m.store.Len() != 0 {
		t.Fatalf("expected cleared store; got %d items", m.store.Len())
	}
	if m.view != viewCapture {
		t.Fatal("expected to land back on capture")
	}
}

func TestActionLine_RecomputedFromStore(t *testing.T) {
	m := newTestModel(t, "メモ", "TODO: 買う")
	if line := m.actionLine(); !strings.Contains(line, "TODO: 買う") {
		t.Fatalf("expected action line to surface the TODO; got %q", line)
	}

	m.store.DeleteItem(m.store.Items()[1].ID)
	if line := m.actionLine(); strings.Contains(line, "TODO") {
		t.Fatalf("expected recomputed action after delete; got %q", line)
	}
}

func TestExportMarkdown_Shape(t *testing.T) {
	m := newTestModel(t, "TODO: 買う", "メモ")
	md := m.exportMarkdown()
	if !strings.HasPrefix(md, "## Next action\nTODO: 買う\n\n## Thoughts\n") {
		t.Fatalf("unexpected export shape:\n%s", md)
	}
	if !strings.Contains(md, "- メモ") {
		t.Fatalf("expected bullet per thought:\n%s", md)
	}
}
