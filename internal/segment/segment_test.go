package segment

import (
	"reflect"
	"testing"
)

func TestLines_TrimsAndDropsEmpties(t *testing.T) {
	got := Lines("  a  \n\n\t\nb\r\n  c\r\n")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
}

func TestLines_KeepsDuplicatesInOrder(t *testing.T) {
	got := Lines("a\nb\na\na")
	want := []string{"a", "b", "a", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
}

func TestLines_Empty(t *testing.T) {
	if got := Lines(""); len(got) != 0 {
		t.Fatalf("expected no lines; got %v", got)
	}
	if got := Lines("  \n \r\n\t"); len(got) != 0 {
		t.Fatalf("expected no lines for whitespace input; got %v", got)
	}
}

func TestUniqueLines_FirstOccurrenceWins(t *testing.T) {
	got := UniqueLines("a\na\nb\na\nc\nb")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
}
