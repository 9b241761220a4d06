package Trees

import (
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// Cross checks against https://github.com/google/btree, https://github.com/petar/GoLLRB
// and https://github.com/emirpasic/gods. Only GoLLRB keeps equal values, so the
// others are given distinct values.

func TestBST_CmpBTree(t *testing.T) {
	tree := New[int]()
	bt := btree.NewG[int](32, func(a, b int) bool { return a < b })
	for _, v := range rg.Perm(tAddN) {
		tree.Insert(v * 2)
		bt.ReplaceOrInsert(v * 2)
	}
	if tree.Size() != bt.Len() {
		t.Errorf("tree size is %d, btree has %d", tree.Size(), bt.Len())
	}
	var want []int
	bt.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	if !slices.Equal(collect(tree, InOrder), want) {
		t.Error("in-order differs from btree ascend")
	}
	a, _ := tree.Minimum()
	m, _ := bt.Min()
	if a != m {
		t.Errorf("minimum is %d, btree has %d", a, m)
	}
	a, _ = tree.Maximum()
	m, _ = bt.Max()
	if a != m {
		t.Errorf("maximum is %d, btree has %d", a, m)
	}
	for range 1000 {
		k := rg.Intn(tAddN * 2)
		if tree.Has(k) != bt.Has(k) {
			t.Errorf("has %d is %v, btree says %v", k, tree.Has(k), bt.Has(k))
		}
	}
}

func TestBST_CmpLLRB(t *testing.T) {
	tree := New[int]()
	lt := llrb.New()
	for range tAddN {
		v := rg.Intn(tAddValRange / 8)
		tree.Insert(v)
		lt.InsertNoReplace(llrb.Int(v))
	}
	if tree.Size() != lt.Len() {
		t.Errorf("tree size is %d, llrb has %d", tree.Size(), lt.Len())
	}
	var want []int
	lt.AscendGreaterOrEqual(llrb.Int(-1), func(i llrb.Item) bool {
		want = append(want, int(i.(llrb.Int)))
		return true
	})
	if !slices.Equal(collect(tree, InOrder), want) {
		t.Error("in-order with equal values differs from llrb ascend")
	}
}

func TestBST_CmpGods(t *testing.T) {
	tree := New[int]()
	rb, avl := redblacktree.NewWithIntComparator(), avltree.NewWithIntComparator()
	for _, v := range rg.Perm(tAddN) {
		tree.Insert(v)
		rb.Put(v, struct{}{})
		avl.Put(v, struct{}{})
	}
	s := collect(tree, InOrder)
	for name, keys := range map[string][]interface{}{"redblacktree": rb.Keys(), "avltree": avl.Keys()} {
		if len(keys) != len(s) {
			t.Errorf("%s has %d keys, tree has %d", name, len(keys), len(s))
			continue
		}
		for i, k := range keys {
			if k.(int) != s[i] {
				t.Errorf("%s key %d is %d, tree has %d", name, i, k, s[i])
				break
			}
		}
	}
	// no tree of this size is shorter than the optimal height.
	if h := tree.Height(); h < OptimalHeight(avl.Size()) {
		t.Errorf("height %d is below the optimal height", h)
	}
}

func TestBST_GodsComparator(t *testing.T) {
	tree, err := NewWith(func(a, b string) int {
		return -utils.StringComparator(a, b)
	})
	if err != nil {
		t.Fatal(err)
	}
	rb := redblacktree.NewWith(utils.StringComparator)
	for _, w := range []string{"pear", "apple", "fig", "kiwi", "date", "apple"} {
		tree.Insert(w)
		rb.Put(w, nil)
	}
	r := collect(tree, ReverseInOrder)
	r = slices.Compact(r)
	keys := rb.Keys()
	if len(keys) != len(r) {
		t.Fatalf("redblacktree has %d keys, tree has %d distinct", len(keys), len(r))
	}
	for i, k := range keys {
		if k.(string) != r[i] {
			t.Errorf("key %d is %v, tree has %v", i, k, r[i])
		}
	}
}
