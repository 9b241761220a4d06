package Trees

import "strconv"

// Tree is an ordered collection of values stored in a binary tree. The ordering
// is fixed when the tree is created and can't be changed afterward.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, calling Minimum on an empty
// tree gives (x T, false bool), and x should not be used.
// Methods implemented recursively are noted, otherwise they are iterative.
type Tree[T any] interface {
	//Insert v to the Tree. Values equal to an existing one are kept, so Insert always succeeds.
	Insert(v T)
	//Find the stored value equal to v.
	Find(v T) (T, bool)
	//Has a value equal to v.
	Has(v T) bool
	//Size of the tree.
	Size() int
	//Height of the tree. The empty tree has height -1 and a single node has height 0.
	Height() int
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Traverse calls visit on every value in the given Order.
	Traverse(o Order, visit func(T))
	//Iterator over the in-order snapshot of the tree at the time of the call.
	Iterator() *Sequence[T]
	//InOrder returns a closure f acting like an iterator: val, valid=f().
	//val is meaningful only if valid is true. When valid==false,
	//f is exhausted and valid can't turn true again.
	InOrder() func() (T, bool)
}

// Comparator returns a negative number when a orders before b, zero when they
// are equivalent and a positive number when a orders after b.
type Comparator[T any] func(a, b T) int

// Comparable is implemented by types that carry their own natural ordering.
type Comparable[T any] interface {
	Compare(o T) int
}

// Order of a traversal.
type Order byte

const (
	InOrder Order = iota
	PreOrder
	PostOrder
	LevelOrder
	ReverseInOrder
)

var orderNames = [...]string{"in", "pre", "post", "level", "rev"}

func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return "Order(" + strconv.Itoa(int(o)) + ")"
}

// ParseOrder accepts the names printed by Order.String.
func ParseOrder(s string) (Order, error) {
	for i, n := range orderNames {
		if n == s {
			return Order(i), nil
		}
	}
	return 0, InvalidOrderError{Name: s}
}
