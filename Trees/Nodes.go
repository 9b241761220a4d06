package Trees

// A node in the BST. Each node exclusively owns its children; nil is an absent child.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// height of the subtree rooting at n. Recursive.
// Time: O(n)
func (n *node[T]) height() int {
	if n == nil {
		return -1
	}
	return 1 + max(n.l.height(), n.r.height())
}

func (n *node[T]) preOrder(f func(T)) {
	if n != nil {
		f(n.v)
		n.l.preOrder(f)
		n.r.preOrder(f)
	}
}

func (n *node[T]) inOrder(f func(T)) {
	if n != nil {
		n.l.inOrder(f)
		f(n.v)
		n.r.inOrder(f)
	}
}

func (n *node[T]) postOrder(f func(T)) {
	if n != nil {
		n.l.postOrder(f)
		n.r.postOrder(f)
		f(n.v)
	}
}

func (n *node[T]) reverseInOrder(f func(T)) {
	if n != nil {
		n.r.reverseInOrder(f)
		f(n.v)
		n.l.reverseInOrder(f)
	}
}
