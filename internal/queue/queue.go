// Package queue provides the singly linked FIFO that carries parsed
// commands from the parser to the engine.
package queue

type node[T any] struct {
	item T
	next *node[T]
}

// Queue is a double-ended singly linked list used as a FIFO. Keeping a tail
// pointer makes PushBack O(1) and keeps items in insertion order.
// The zero value is an empty queue.
type Queue[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Len returns the number of live items.
func (q *Queue[T]) Len() int {
	return q.size
}

// PushBack appends item at the tail.
func (q *Queue[T]) PushBack(item T) {
	n := &node[T]{item: item}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

// PopFront removes and returns the head item. The second result is false
// when the queue is empty.
func (q *Queue[T]) PopFront() (T, bool) {
	var zero T
	n := q.head
	if n == nil {
		return zero, false
	}
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	n.next = nil
	q.size--
	return n.item, true
}

// At returns the item at index i counted from the head without removing it.
func (q *Queue[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= q.size {
		return zero, false
	}
	n := q.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n.item, true
}

// Free drops every remaining node, handing each item to destroy in queue
// order first. destroy may be nil when items own nothing.
func (q *Queue[T]) Free(destroy func(T)) {
	n := q.head
	for n != nil {
		next := n.next
		if destroy != nil {
			destroy(n.item)
		}
		var zero T
		n.item = zero
		n.next = nil
		n = next
	}
	q.head = nil
	q.tail = nil
	q.size = 0
}
