// Package pq exposes a generic, mergeable priority queue implemented using a binomial heap.
package pq

import (
	"github.com/couchbase/binheap/log"
	"github.com/couchbase/binheap/types/binomial"
)

// PriorityQueue implements a basic priority queue which accepts a generic payload with an integer priority.
//
// The zero value of PriorityQueue is an empty queue ready for use.
type PriorityQueue[T any] struct {
	inner *binomial.Heap[Item[T]]
}

// NewPriorityQueue creates a new empty priority queue.
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return NewPriorityQueueWithLogger[T](nil)
}

// NewPriorityQueueWithLogger creates a new empty priority queue which reports structural events to the given logger.
func NewPriorityQueueWithLogger[T any](logger log.Logger) *PriorityQueue[T] {
	return &PriorityQueue[T]{inner: newHeap[T](logger)}
}

func newHeap[T any](logger log.Logger) *binomial.Heap[Item[T]] {
	inner, err := binomial.NewWithOptions(binomial.Options[Item[T]]{Compare: compareItems[T], Logger: logger})
	if err != nil {
		panic(err)
	}

	return inner
}

// heap returns the underlying heap, creating it if the queue is a zero value.
func (p *PriorityQueue[T]) heap() *binomial.Heap[Item[T]] {
	if p.inner == nil {
		p.inner = newHeap[T](nil)
	}

	return p.inner
}

// Enqueue adds the given item to the priority queue.
func (p *PriorityQueue[T]) Enqueue(item Item[T]) {
	p.heap().Insert(item)
}

// Peek returns the item with the highest priority without removing it, or 'binomial.ErrEmptyHeap' if the queue is
// empty.
func (p *PriorityQueue[T]) Peek() (Item[T], error) {
	return p.heap().PeekMin()
}

// Dequeue returns the item from the queue with the highest priority, where multiple items have the same priority,
// they're returned in an arbitrary order. Returns 'binomial.ErrEmptyHeap' if the queue is empty.
func (p *PriorityQueue[T]) Dequeue() (Item[T], error) {
	return p.heap().ExtractMin()
}

// Merge moves all the items from other into this queue, leaving other empty.
func (p *PriorityQueue[T]) Merge(other *PriorityQueue[T]) {
	if other == nil || other.inner == nil {
		return
	}

	p.heap().Union(other.inner)
}

// Len returns the number of items in the priority queue.
func (p *PriorityQueue[T]) Len() int {
	return p.heap().Len()
}

// Drain removes all items from the queue running the given function on each item. In the event of an error, dequeuing
// stops early, and returns the error.
func (p *PriorityQueue[T]) Drain(fn func(item Item[T]) error) error {
	return p.heap().Drain(fn)
}
