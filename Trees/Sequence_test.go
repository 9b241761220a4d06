package Trees

import (
	"errors"
	"slices"
	"testing"
)

func drain[T any](t *testing.T, s *Sequence[T]) []T {
	t.Helper()
	var r []T
	for s.HasNext() {
		v, err := s.Next()
		if err != nil {
			t.Fatalf("next with HasNext gave %v", err)
		}
		r = append(r, v)
	}
	return r
}

func TestSequence_InOrder(t *testing.T) {
	tree, _ := randomTree(tAddN, tAddValRange)
	s := tree.Iterator()
	if s.Len() != tree.Size() {
		t.Errorf("sequence length is %d, want %d", s.Len(), tree.Size())
	}
	got := drain(t, s)
	if !slices.Equal(got, collect(tree, InOrder)) {
		t.Error("sequence differs from in-order traversal")
	}
	var e *ExhaustedSequenceError
	for range 3 {
		if _, err := s.Next(); !errors.As(err, &e) {
			t.Errorf("next on exhausted sequence gave %v", err)
		}
	}
	if s.HasNext() || s.Len() != 0 {
		t.Error("exhausted sequence has next")
	}
}

func TestSequence_Snapshot(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{5, 3, 8} {
		tree.Insert(v)
	}
	s := tree.Iterator()
	first, _ := s.Next()
	tree.Insert(1)
	tree.Insert(9)
	if rest := drain(t, s); first != 3 || !slices.Equal(rest, []int{5, 8}) {
		t.Errorf("sequence gave %d then %v, want 3 then [5 8]", first, rest)
	}
	if again := drain(t, tree.Iterator()); !slices.Equal(again, []int{1, 3, 5, 8, 9}) {
		t.Errorf("new sequence gave %v", again)
	}
}

func TestBST_InOrderClosure(t *testing.T) {
	tree, _ := randomTree(500, 100)
	f := tree.InOrder()
	tree.Insert(-1)
	var s []int
	for v, ok := f(); ok; v, ok = f() {
		s = append(s, v)
	}
	if len(s) != 500 || !slices.IsSorted(s) {
		t.Errorf("closure gave %d values, sorted %v", len(s), slices.IsSorted(s))
	}
	if _, ok := f(); ok {
		t.Error("closure turned valid after exhaustion")
	}
}
