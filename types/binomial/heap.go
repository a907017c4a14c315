// Package binomial exposes a generic mergeable priority queue implemented using a binomial heap.
package binomial

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/couchbase/binheap/log"
)

// maxOrder is the number of order slots in a heap; a heap of n elements holds a tree of order i iff bit i of n is set,
// so an int sized count can never need more slots than this.
const maxOrder = bits.UintSize

// noMinimum is the cached minimum of an empty heap.
const noMinimum = -1

// Heap is a min-heap supporting efficient union of two independently built heaps.
//
// Where multiple keys compare equal, they're returned in an arbitrary (but deterministic) order.
//
// NOTE: The zero value of Heap has no ordering and must not be used, create heaps using 'New', 'NewFunc' or
// 'NewWithOptions'.
//
// NOTE: Heap is not safe for concurrent use and needs to be wrapped in a lock to be shared safely between goroutines.
type Heap[K any] struct {
	roots   [maxOrder]*node[K]
	count   int
	min     int
	compare func(a, b K) int
	logger  log.WrappedLogger
}

// New creates a new empty heap ordered using the natural ordering of K.
func New[K constraints.Ordered]() *Heap[K] {
	return NewFunc(compareOrdered[K])
}

// NewWithKey creates a new heap ordered using the natural ordering of K which contains the given key.
func NewWithKey[K constraints.Ordered](key K) *Heap[K] {
	return NewWithKeyFunc(compareOrdered[K], key)
}

// NewWithKeyFunc creates a new heap ordered using the given comparison function which contains the given key.
func NewWithKeyFunc[K any](compare func(a, b K) int, key K) *Heap[K] {
	heap := NewFunc(compare)
	heap.Insert(key)

	return heap
}

// NewFunc creates a new empty heap ordered using the given comparison function, see 'Options.Compare'.
//
// NOTE: This function will panic if compare is nil, use 'NewWithOptions' to handle this case gracefully.
func NewFunc[K any](compare func(a, b K) int) *Heap[K] {
	heap, err := NewWithOptions(Options[K]{Compare: compare})
	if err != nil {
		panic(err)
	}

	return heap
}

// NewWithOptions creates a new empty heap using the given options.
func NewWithOptions[K any](options Options[K]) (*Heap[K], error) {
	if options.Compare == nil {
		return nil, ErrNilCompare
	}

	return &Heap[K]{min: noMinimum, compare: options.Compare, logger: log.NewWrappedLogger(options.Logger)}, nil
}

// Len returns the number of keys in the heap.
func (h *Heap[K]) Len() int {
	return h.count
}

// Empty returns a boolean indicating whether the heap contains any keys.
func (h *Heap[K]) Empty() bool {
	return h.count == 0
}

// Insert adds the given key to the heap.
func (h *Heap[K]) Insert(key K) {
	h.carry(newNode(key))
	h.count++
	h.findMin()
}

// PeekMin returns the smallest key in the heap without removing it, or 'ErrEmptyHeap' if there are no keys.
func (h *Heap[K]) PeekMin() (K, error) {
	if h.count == 0 {
		return *new(K), ErrEmptyHeap
	}

	return h.roots[h.min].key, nil
}

// ExtractMin removes and returns the smallest key in the heap, or 'ErrEmptyHeap' if there are no keys.
func (h *Heap[K]) ExtractMin() (K, error) {
	if h.count == 0 {
		return *new(K), ErrEmptyHeap
	}

	var (
		order = h.min
		root  = h.roots[order]
	)

	h.roots[order] = nil
	h.count -= root.size

	// Each child is the root of a binomial tree of a distinct order, reinserting them one at a time is equivalent to a
	// union with a one tree heap per child; the order they're detached in doesn't matter.
	var carries int

	for child, ok := root.detach(); ok; child, ok = root.detach() {
		h.count += child.size
		carries += h.carry(child)
	}

	h.logger.Tracef("(Binomial) Extracted minimum from order %d, reinserting its children caused %d carries",
		order, carries)

	h.findMin()

	return root.key, nil
}

// Union moves all the keys from other into this heap.
//
// NOTE: Ownership of the keys is transferred, other is left empty and may continue to be used as an independent heap.
// Both heaps must use the same ordering, otherwise the behavior is unspecified.
func (h *Heap[K]) Union(other *Heap[K]) {
	if other == nil || other.count == 0 {
		return
	}

	if other == h {
		h.logger.Warnf("(Binomial) Ignoring union of a heap with itself")
		return
	}

	var carries int

	for order := 0; order < maxOrder; order++ {
		tree := other.roots[order]
		if tree == nil {
			continue
		}

		other.roots[order] = nil

		carries += h.carry(tree)
	}

	h.logger.Tracef("(Binomial) Merged %d key(s) into heap of %d key(s) with %d carries", other.count, h.count,
		carries)

	h.count += other.count
	h.findMin()

	other.count = 0
	other.min = noMinimum
}

// Drain removes all keys from the heap in ascending order running the given function on each key. In the event of an
// error, draining stops early, and returns the error.
func (h *Heap[K]) Drain(fn func(key K) error) error {
	for h.count > 0 {
		key, err := h.ExtractMin()
		if err != nil {
			return err
		}

		if err := fn(key); err != nil {
			return err
		}
	}

	return nil
}

// carry installs the given tree in the heap, combining it with the tree already occupying its order (and any further
// orders) in the same way a carry propagates when adding binary numbers. Returns the number of combinations performed.
//
// NOTE: The element count and cached minimum are not updated, this is the responsibility of the caller.
func (h *Heap[K]) carry(tree *node[K]) int {
	order := tree.order()

	existing := h.roots[order]
	if existing == nil {
		h.roots[order] = tree
		return 0
	}

	// The tree already in the heap wins ties for the initial collision, after which the carried tree does.
	h.roots[order] = nil
	tree = link(h.compare, existing, tree)

	carries := 1

	for order = tree.order(); order < maxOrder && h.roots[order] != nil; order = tree.order() {
		existing = h.roots[order]
		h.roots[order] = nil
		tree = link(h.compare, tree, existing)
		carries++
	}

	if order >= maxOrder {
		h.logger.Panicf("(Binomial) Carry overflowed the maximum order %d", maxOrder)
	}

	h.roots[order] = tree

	return carries
}

// findMin recomputes the cached minimum by scanning the roots, it should be called once per public operation which
// modifies the structure of the heap.
func (h *Heap[K]) findMin() {
	h.min = noMinimum

	for order, root := range h.roots {
		if root == nil {
			continue
		}

		if h.min == noMinimum || h.compare(root.key, h.roots[h.min].key) < 0 {
			h.min = order
		}
	}
}

// compareOrdered is the comparison function used for heaps of naturally ordered keys.
func compareOrdered[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
