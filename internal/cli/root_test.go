package cli

import (
	"bytes"
	"strings"
	"testing"
)

func runCmd(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--dir", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := runCmd(t, dir, args...)
	if err != nil {
		t.Fatalf("%v failed: %v\n%s", args, err, out)
	}
	return out
}

func TestAddListNext(t *testing.T) {
	t.Setenv("SIFT_CONFIG_DIR", t.TempDir())
	dir := t.TempDir()

	mustRun(t, dir, "add", "メモ", "TODO: 買う")
	out := mustRun(t, dir, "list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "メモ") || !strings.Contains(lines[1], "TODO: 買う") {
		t.Fatalf("unexpected list output:\n%s", out)
	}

	if next := strings.TrimSpace(mustRun(t, dir, "next")); next != "TODO: 買う" {
		t.Fatalf("expected TODO suggestion; got %q", next)
	}
}

func TestNext_EmptyStoreIsSilent(t *testing.T) {
	t.Setenv("SIFT_CONFIG_DIR", t.TempDir())
	dir := t.TempDir()
	if out := mustRun(t, dir, "next"); strings.TrimSpace(out) != "" {
		t.Fatalf("expected no output; got %q", out)
	}
}

func TestExport_Shape(t *testing.T) {
	t.Setenv("SIFT_CONFIG_DIR", t.TempDir())
	dir := t.TempDir()

	mustRun(t, dir, "add", "TODO: 買う", "メモ")
	out := mustRun(t, dir, "export")
	if !strings.Contains(out, "## Next action\nTODO: 買う\n\n## Thoughts\n- TODO: 買う\n- メモ") {
		t.Fatalf("unexpected export output:\n%s", out)
	}
}

func TestClear_RequiresConfirmation(t *testing.T) {
	t.Setenv("SIFT_CONFIG_DIR", t.TempDir())
	dir := t.TempDir()

	mustRun(t, dir, "add", "a")
	if _, err := runCmd(t, dir, "clear"); err == nil {
		t.Fatal("expected clear without --yes to fail")
	}
	if out := mustRun(t, dir, "list"); !strings.Contains(out, "a") {
		t.Fatalf("expected items intact after refused clear:\n%s", out)
	}

	mustRun(t, dir, "clear", "--yes")
	if out := mustRun(t, dir, "list"); strings.TrimSpace(out) != "" {
		t.Fatalf("expected empty list after clear:\n%s", out)
	}
}

func TestAdd_NothingToCapture(t *testing.T) {
	t.Setenv("SIFT_CONFIG_DIR", t.TempDir())
	dir := t.TempDir()
	if _, err := runCmd(t, dir, "add", "   "); err == nil {
		t.Fatal("expected error for whitespace-only input")
	}
}
