package Queues

// Queue is a FIFO queue.
type Queue[T any] interface {
	Push(item T)
	// Pop the head of the queue. Returns EmptyQueueError when there's nothing to pop.
	Pop() (T, error)
	// Peek at the head without removing it. The bool is false when the queue is empty.
	Peek() (T, bool)
	Empty() bool
}

// ArrayQueue is a Queue backed by a single growable array.
type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
