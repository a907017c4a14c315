package binomial

import "fmt"

// Validate walks every tree in the heap checking the structural invariants which all operations maintain:
//   - Each occupied order slot holds a tree of that order, and the occupied orders are the set bits of the count
//   - Every node of order k has exactly k children, with the orders 0 through k-1
//   - Every subtree size is one more than the sum of its children's sizes
//   - No child has a key which is smaller than its parent's key
//   - The cached minimum is the smallest root
//
// An '*InvariantError' listing every violation is returned if any are found, the heap is not modified.
func (h *Heap[K]) Validate() error {
	var (
		errs  InvariantError
		total int
		mask  uint
	)

	for order, root := range h.roots {
		if root == nil {
			continue
		}

		mask |= 1 << order
		total += root.size

		if root.order() != order {
			errs.Add(fmt.Errorf("%w: root in slot %d has order %d", ErrNonCanonicalShape, order, root.order()))
		}

		h.validateTree(&errs, root, fmt.Sprintf("root[%d]", order))
	}

	if total != h.count {
		errs.Add(fmt.Errorf("%w: count is %d but the trees hold %d key(s)", ErrCountMismatch, h.count, total))
	}

	if h.count >= 0 && mask != uint(h.count) {
		errs.Add(fmt.Errorf("%w: occupied orders %b do not match count %b", ErrCountMismatch, mask, h.count))
	}

	h.validateMin(&errs)

	return errs.ErrOrNil()
}

// validateTree recursively checks the shape, sizes and ordering of the tree rooted at n.
func (h *Heap[K]) validateTree(errs *InvariantError, n *node[K], path string) {
	size := 1

	for rank, child := range n.children {
		childPath := fmt.Sprintf("%s.children[%d]", path, rank)

		if child.order() != rank {
			errs.Add(fmt.Errorf("%w: %s has order %d", ErrNonCanonicalShape, childPath, child.order()))
		}

		if h.compare(child.key, n.key) < 0 {
			errs.Add(fmt.Errorf("%w: %s", ErrHeapOrder, childPath))
		}

		h.validateTree(errs, child, childPath)

		size += child.size
	}

	if n.size != size {
		errs.Add(fmt.Errorf("%w: %s has size %d but holds %d node(s)", ErrCountMismatch, path, n.size, size))
	}

	if expected := 1 << n.order(); n.size != expected {
		errs.Add(fmt.Errorf("%w: %s of order %d has size %d, expected %d", ErrNonCanonicalShape, path, n.order(),
			n.size, expected))
	}
}

func (h *Heap[K]) validateMin(errs *InvariantError) {
	if h.count == 0 {
		if h.min != noMinimum {
			errs.Add(fmt.Errorf("%w: empty heap has minimum in slot %d", ErrStaleMinimum, h.min))
		}

		return
	}

	if h.min < 0 || h.min >= maxOrder || h.roots[h.min] == nil {
		errs.Add(fmt.Errorf("%w: slot %d is not occupied", ErrStaleMinimum, h.min))
		return
	}

	for order, root := range h.roots {
		if root != nil && h.compare(root.key, h.roots[h.min].key) < 0 {
			errs.Add(fmt.Errorf("%w: root in slot %d is smaller than the root in slot %d", ErrStaleMinimum, order,
				h.min))
		}
	}
}
