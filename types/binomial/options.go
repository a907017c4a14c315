package binomial

import "github.com/couchbase/binheap/log"

// Options encapsulates the configuration used when creating a heap using 'NewWithOptions'.
type Options[K any] struct {
	// Compare defines the total order of the keys, it must return a negative number when a sorts before b, zero when
	// they're equal and a positive number otherwise. Required.
	//
	// NOTE: Behavior is unspecified if the ordering is inconsistent (e.g. not transitive).
	Compare func(a, b K) int

	// Logger is the logger used to report structural events at the trace level, if nil nothing is logged.
	Logger log.Logger
}
