package pixedit

import (
	"reflect"
	"testing"
)

func labels(h *History) []string {
	var out []string
	for _, e := range h.Entries() {
		out = append(out, e.Label)
	}
	return out
}

func push(h *History, names ...string) {
	for _, n := range names {
		h.Push(NewEntry(n, []byte(n), Identity()))
	}
}

func TestHistoryScenario(t *testing.T) {
	var h History
	push(&h, "A", "B", "C")

	steps := []struct {
		op   func() (Entry, bool)
		want string
	}{
		{h.Undo, "B"},
		{h.Undo, "A"},
		{h.Redo, "B"},
	}
	for i, s := range steps {
		e, ok := s.op()
		if !ok || e.Label != s.want {
			t.Fatalf("step %d: got %q (%v), want %q", i, e.Label, ok, s.want)
		}
	}

	push(&h, "D")
	if got := labels(&h); !reflect.DeepEqual(got, []string{"A", "B", "D"}) {
		t.Fatalf("entries = %v, want [A B D]", got)
	}
	if _, ok := h.Redo(); ok {
		t.Fatal("redo after push must be a no-op")
	}
	if h.Index() != 2 {
		t.Fatalf("index = %d, want 2", h.Index())
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	for n := 1; n <= 6; n++ {
		var h History
		for i := 0; i < n; i++ {
			push(&h, string(rune('a'+i)))
		}
		before, _ := h.Current()
		for i := 0; i < n-1; i++ {
			if _, ok := h.Undo(); !ok {
				t.Fatalf("n=%d: undo %d failed", n, i)
			}
		}
		for i := 0; i < n-1; i++ {
			if _, ok := h.Redo(); !ok {
				t.Fatalf("n=%d: redo %d failed", n, i)
			}
		}
		after, _ := h.Current()
		if after.ID != before.ID {
			t.Fatalf("n=%d: round trip ended at %q, want %q", n, after.Label, before.Label)
		}
	}
}

func TestHistoryBranchDiscard(t *testing.T) {
	var h History
	push(&h, "a", "b", "c", "d")
	h.Undo()
	h.Undo()
	held := h.Entries()

	push(&h, "x")
	if got := labels(&h); !reflect.DeepEqual(got, []string{"a", "b", "x"}) {
		t.Fatalf("entries = %v", got)
	}
	if held[2].Label != "c" || held[3].Label != "d" {
		t.Fatal("push must not mutate previously returned entries")
	}
}

func TestHistoryBoundaries(t *testing.T) {
	var h History
	if _, ok := h.Undo(); ok {
		t.Fatal("undo on empty history")
	}
	if _, ok := h.Redo(); ok {
		t.Fatal("redo on empty history")
	}
	if _, ok := h.Reset(); ok {
		t.Fatal("reset on empty history")
	}
	if _, ok := h.Current(); ok {
		t.Fatal("current on empty history")
	}

	push(&h, "orig")
	if _, ok := h.Undo(); ok {
		t.Fatal("undo at index 0 must be a no-op")
	}
	if _, ok := h.Redo(); ok {
		t.Fatal("redo at last index must be a no-op")
	}

	push(&h, "1", "2")
	e, ok := h.Reset()
	if !ok || e.Label != "orig" || h.Len() != 1 || h.Index() != 0 {
		t.Fatalf("reset: %q %v len=%d index=%d", e.Label, ok, h.Len(), h.Index())
	}
	h.Clear()
	if h.Len() != 0 || h.Index() != 0 {
		t.Fatal("clear must empty the history")
	}
}

func TestHistoryLimit(t *testing.T) {
	h := History{Limit: 3}
	push(&h, "orig", "1", "2", "3", "4")
	if got := labels(&h); !reflect.DeepEqual(got, []string{"orig", "3", "4"}) {
		t.Fatalf("entries = %v", got)
	}
	if h.Index() != 2 {
		t.Fatalf("index = %d, want 2", h.Index())
	}
	h.Undo()
	h.Undo()
	if e, _ := h.Current(); e.Label != "orig" {
		t.Fatalf("current = %q, want orig", e.Label)
	}
}

func TestHistoryInvariant(t *testing.T) {
	h := History{Limit: 4}
	ops := []func(){
		func() { push(&h, "p") },
		func() { h.Undo() },
		func() { h.Redo() },
		func() { h.Undo() },
		func() { push(&h, "q") },
		func() { push(&h, "r") },
		func() { push(&h, "s") },
		func() { push(&h, "t") },
		func() { h.Reset() },
		func() { h.Redo() },
	}
	for i, op := range ops {
		op()
		if h.Len() > 0 && (h.Index() < 0 || h.Index() >= h.Len()) {
			t.Fatalf("op %d: index %d out of [0,%d)", i, h.Index(), h.Len())
		}
	}
}
