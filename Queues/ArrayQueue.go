package Queues

// circArrQ is a ring over content. head is the index of the first item and
// tail the index one past the last item, both modulo len(content).
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue returns an empty queue that holds initCap items before it has to grow.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{content: make([]T, initCap)}
}

func (this *circArrQ[T]) Empty() bool {
	return this.sz == 0
}

// resize the ring to newLen slots, newLen>=sz. The items are unrolled so that head becomes 0.
func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.sz > 0 {
		if this.head < this.tail {
			copy(nc, this.content[this.head:this.tail])
		} else {
			n := copy(nc, this.content[this.head:])
			copy(nc[n:], this.content[:this.tail])
		}
	}
	this.content = nc
	this.head, this.tail = 0, this.sz%newLen
}

// Shrink the underlying array to fit the current items.
func (this *circArrQ[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this *circArrQ[T]) Size() uint {
	return this.sz
}

// Push item to the back. Grows by 3/2 when full.
func (this *circArrQ[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(max(this.sz*3/2, this.sz+1))
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return item, &EmptyQueueError{}
	}
	item = this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % uint(len(this.content))
	this.sz--
	return item, nil
}

func (this *circArrQ[T]) Peek() (item T, has bool) {
	if this.Empty() {
		return
	}
	return this.content[this.head], true
}
