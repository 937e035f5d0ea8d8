package genres

import (
	"sort"
	"testing"
)

func TestExpandIgnoresUnknownKeys(t *testing.T) {
	got := Expand([]string{"jazz", "nonexistent_key"})
	want := Expand([]string{"jazz"})

	if len(got) != len(want) {
		t.Fatalf("Expand with unknown key changed the result: got %v, want %v", got.Slice(), want.Slice())
	}
	for id := range want {
		if _, ok := got[id]; !ok {
			t.Errorf("expected genre id %d in expansion", id)
		}
	}
}

func TestExpandNoKnownKeys(t *testing.T) {
	if got := Expand([]string{"polka", "vaporwave"}); len(got) != 0 {
		t.Errorf("expected empty set, got %v", got.Slice())
	}
}

func TestExpandIsCaseInsensitive(t *testing.T) {
	if len(Expand([]string{"JAZZ"})) == 0 {
		t.Error("uppercase key should expand")
	}
}

func TestUnion(t *testing.T) {
	a := NewIDSet(1, 2)
	b := NewIDSet(2, 3)

	got := a.Union(b).Slice()
	want := []int{1, 2, 3}

	if len(got) != len(want) {
		t.Fatalf("Union = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Union = %v, want %v", got, want)
		}
	}

	// Inputs must be untouched.
	if len(a) != 2 || len(b) != 2 {
		t.Error("Union modified its inputs")
	}
}

func TestSliceSorted(t *testing.T) {
	ids := NewIDSet(878, 18, 10402, 28).Slice()
	if !sort.IntsAreSorted(ids) {
		t.Errorf("Slice() not sorted: %v", ids)
	}
}
