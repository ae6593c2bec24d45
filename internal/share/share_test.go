package share

import "testing"

func TestMarkdown(t *testing.T) {
	got := Markdown("TODO: 買う", []string{"TODO: 買う", "メモ"})
	want := "## Next action\nTODO: 買う\n\n## Thoughts\n- TODO: 買う\n- メモ"
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestMarkdown_Empty(t *testing.T) {
	got := Markdown("", nil)
	want := "## Next action\n(nothing yet)\n\n## Thoughts"
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}
