package vector

import (
	"errors"
	"fmt"
)

// ErrLimit is returned by CheckedAllocator when an allocation would
// exceed its element budget.
var ErrLimit = errors.New("vector: allocation limit exceeded")

// AllocationError reports a failed attempt to acquire storage. The
// vector that observed it is unchanged: no value was destroyed, no
// block was released.
type AllocationError struct {
	Elems int   // element count requested
	Cause error // underlying allocator failure
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("vector: allocating %d elements: %v", e.Elems, e.Cause)
}

func (e *AllocationError) Unwrap() error { return e.Cause }
