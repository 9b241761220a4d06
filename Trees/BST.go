package Trees

import (
	"cmp"
	"fmt"
	"io"
	"reflect"

	"github.com/g-m-twostay/wordtrees/Queues"
	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree. The shape of the tree depends only on
// the order of insertions. Values that compare equal are all kept: a new value
// equal to an existing one goes to its right subtree, so every value in the left
// subtree of a node orders strictly before it and every value in the right
// subtree orders at or after it.
// The ordering is fixed at creation; there's no way to change it afterward.
// BST isn't safe for concurrent use.
type BST[T any] struct {
	root *node[T]
	sz   int
	cmp  Comparator[T]
}

// New BST using the natural ordering of T.
func New[T constraints.Ordered]() *BST[T] {
	return &BST[T]{cmp: cmp.Compare[T]}
}

// NewWith returns a BST ordered by c. It fails with UnorderableTypeError when c is nil.
func NewWith[T any](c Comparator[T]) (*BST[T], error) {
	if c == nil {
		return nil, &UnorderableTypeError{reflect.TypeFor[T]().String()}
	}
	return &BST[T]{cmp: c}, nil
}

// NewComparable returns a BST ordered by T's own Compare method.
func NewComparable[T Comparable[T]]() *BST[T] {
	return &BST[T]{cmp: func(a, b T) int { return a.Compare(b) }}
}

// NewNatural returns a BST using the natural ordering of T found at run time: either
// T implements Comparable[T], or T's underlying type is an integer, float or string.
// Otherwise, it fails with UnorderableTypeError. When T is an interface type, its
// method set must include Compare(T) int, and nil interface values can't be inserted.
func NewNatural[T any]() (*BST[T], error) {
	if c := naturalOrder[T](); c != nil {
		return &BST[T]{cmp: c}, nil
	}
	return nil, &UnorderableTypeError{reflect.TypeFor[T]().String()}
}

func naturalOrder[T any]() Comparator[T] {
	if reflect.TypeFor[T]().Implements(reflect.TypeFor[Comparable[T]]()) {
		return func(a, b T) int { return any(a).(Comparable[T]).Compare(b) }
	}
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b T) int { return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int()) }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b T) int { return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint()) }
	case reflect.Float32, reflect.Float64:
		return func(a, b T) int { return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float()) }
	case reflect.String:
		return func(a, b T) int { return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String()) }
	}
	return nil
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *BST[T]) Size() int {
	return u.sz
}

// insert v into the subtree whose root is at curPtr. Recursive.
func (u *BST[T]) insert(curPtr **node[T], v T) {
	if cur := *curPtr; cur == nil {
		*curPtr = &node[T]{v: v}
		u.sz++
	} else if u.cmp(v, cur.v) < 0 {
		u.insert(&cur.l, v)
	} else {
		u.insert(&cur.r, v)
	}
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *BST[T]) Insert(v T) {
	u.insert(&u.root, v)
}

func (u *BST[T]) find(cur *node[T], v T) (T, bool) {
	if cur == nil {
		return *new(T), false
	}
	if c := u.cmp(v, cur.v); c < 0 {
		return u.find(cur.l, v)
	} else if c > 0 {
		return u.find(cur.r, v)
	}
	return cur.v, true
}

// Find [Tree.Find]. Recursive. The value returned is the stored one, not v.
// Time: O(D)
func (u *BST[T]) Find(v T) (T, bool) {
	return u.find(u.root, v)
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Height [Tree.Height]. Recursive, the tree is walked on every call.
// Time: O(n)
func (u *BST[T]) Height() int {
	return u.root.height()
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// DefaultVisit prints v on its own line. Nil values are skipped.
func DefaultVisit[T any](v T) {
	if !isNil(v) {
		fmt.Println(v)
	}
}

// isNil reports whether v is a nil interface, pointer, map, slice, func or chan.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Traverse [Tree.Traverse]. A nil visit means DefaultVisit. Panics with
// InvalidOrderError when o isn't one of the defined orders.
// PreOrder, InOrder, PostOrder and ReverseInOrder are recursive. LevelOrder uses a queue.
// Time: O(n)
func (u *BST[T]) Traverse(o Order, visit func(T)) {
	if visit == nil {
		visit = DefaultVisit[T]
	}
	switch o {
	case InOrder:
		u.root.inOrder(visit)
	case PreOrder:
		u.root.preOrder(visit)
	case PostOrder:
		u.root.postOrder(visit)
	case LevelOrder:
		u.levelOrder(visit)
	case ReverseInOrder:
		u.root.reverseInOrder(visit)
	default:
		panic(InvalidOrderError{Order: o})
	}
}

// levelOrder visits the nodes breadth first, left to right within a depth.
func (u *BST[T]) levelOrder(visit func(T)) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*node[T]](uint(u.sz/2 + 1))
	q.Push(u.root)
	for !q.Empty() {
		cur, _ := q.Pop()
		visit(cur.v)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
}

// Fprint writes every value on its own line to w in the given Order, skipping
// nil values like DefaultVisit. It stops writing at the first error, which is returned.
func (u *BST[T]) Fprint(w io.Writer, o Order) (err error) {
	u.Traverse(o, func(v T) {
		if err == nil && !isNil(v) {
			_, err = fmt.Fprintln(w, v)
		}
	})
	return
}

// Iterator [Tree.Iterator]
// Time: O(n) to build the snapshot. Space: O(n)
func (u *BST[T]) Iterator() *Sequence[T] {
	q := Queues.MakeArrayQueue[T](uint(u.sz))
	u.root.inOrder(q.Push)
	return &Sequence[T]{q}
}

// InOrder [Tree.InOrder]. It's backed by an Iterator, so later insertions aren't seen by f.
func (u *BST[T]) InOrder() func() (T, bool) {
	s := u.Iterator()
	return func() (T, bool) {
		v, err := s.Next()
		return v, err == nil
	}
}
