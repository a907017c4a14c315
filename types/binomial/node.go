package binomial

// node is the root of a binomial tree. Children are indexed by rank, so the child at index i is itself the root of a
// binomial tree of order i; the order of a node is therefore the number of children it holds.
type node[K any] struct {
	key      K
	size     int
	children []*node[K]
}

// newNode returns a binomial tree of order zero holding the given key.
func newNode[K any](key K) *node[K] {
	return &node[K]{key: key, size: 1}
}

func (n *node[K]) order() int {
	return len(n.children)
}

// attach makes child the new highest order child of n.
//
// NOTE: The child must have the same order as n, this isn't checked here; it's guaranteed by only ever linking roots
// which occupy the same order slot.
func (n *node[K]) attach(child *node[K]) {
	n.children = append(n.children, child)
	n.size += child.size
}

// detach removes and returns the highest order child of n, returning false if n has no children.
func (n *node[K]) detach() (*node[K], bool) {
	if len(n.children) == 0 {
		return nil, false
	}

	last := len(n.children) - 1

	child := n.children[last]
	n.children[last] = nil
	n.children = n.children[:last]
	n.size -= child.size

	return child, true
}

// link combines two trees of equal order into a single tree of the next order. The first tree becomes the parent when
// its key compares less than or equal to the second's.
func link[K any](compare func(a, b K) int, first, second *node[K]) *node[K] {
	if compare(first.key, second.key) <= 0 {
		first.attach(second)
		return first
	}

	second.attach(first)

	return second
}
