package binomial

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyHeap is returned by operations which require at least one element when the heap is empty.
	ErrEmptyHeap = errors.New("heap is empty")

	// ErrNilCompare is returned when constructing a heap without a comparison function.
	ErrNilCompare = errors.New("a comparison function is required")
)

// InvariantError aggregates every structural invariant violation found when validating a heap.
//
// The zero value of InvariantError is ready for use.
type InvariantError struct {
	violations []error
}

// Add records a new violation, nil errors are ignored.
func (e *InvariantError) Add(err error) {
	if err == nil {
		return
	}

	e.violations = append(e.violations, err)
}

// Errors returns the full list of violations, or nil if there are none.
func (e *InvariantError) Errors() []error {
	return e.violations
}

// ErrOrNil returns the InvariantError if any violations have been recorded, nil otherwise.
func (e *InvariantError) ErrOrNil() error {
	if e == nil || len(e.violations) == 0 {
		return nil
	}

	return e
}

func (e *InvariantError) Error() string {
	msgs := make([]string, 0, len(e.violations))

	for _, err := range e.violations {
		msgs = append(msgs, err.Error())
	}

	return "heap invariants violated: " + strings.Join(msgs, "; ")
}

// Is returns true if any of the recorded violations matches the target.
func (e *InvariantError) Is(target error) bool {
	for _, err := range e.violations {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// Violations reported by 'Validate', each wrapped with details of where it was found.
var (
	ErrCountMismatch     = errors.New("element count does not match the occupied orders")
	ErrNonCanonicalShape = errors.New("tree is not a canonical binomial tree")
	ErrHeapOrder         = errors.New("child key is smaller than its parent's")
	ErrStaleMinimum      = errors.New("cached minimum is not the smallest root")
)
