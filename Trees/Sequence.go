package Trees

import "github.com/g-m-twostay/wordtrees/Queues"

// Sequence is an in-order iterator over a snapshot of a tree. The snapshot is
// taken in full when the Sequence is created; changes to the tree afterward
// aren't seen. Create a new Sequence to see them.
// A Sequence is either has-more or exhausted, and once exhausted it stays so.
type Sequence[T any] struct {
	q Queues.ArrayQueue[T]
}

// HasNext reports whether Next will return a value.
func (u *Sequence[T]) HasNext() bool {
	return !u.q.Empty()
}

// Next removes and returns the front value. Returns ExhaustedSequenceError when
// there's nothing left.
func (u *Sequence[T]) Next() (T, error) {
	v, err := u.q.Pop()
	if err != nil {
		return v, &ExhaustedSequenceError{}
	}
	return v, nil
}

// Len is the number of values not yet read.
func (u *Sequence[T]) Len() int {
	return int(u.q.Size())
}
