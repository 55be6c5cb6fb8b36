// Package vector implements a generic dynamic array that manages two
// things separately: a contiguous storage block and the lifetime of the
// values held in it. Slots below Len hold live values; slots between Len
// and Cap are raw storage that no value has been constructed in yet.
package vector

// Vector is a growable contiguous container for values of type T.
// Storage comes from an Allocator (the Go heap by default) and element
// lifetimes are driven through the optional Lifecycle hooks, so types
// that own external resources get a construct/destroy step even though
// Go has no destructors.
//
// The zero value is an empty, heap-backed vector ready for use.
// Not goroutine-safe; use SafeVector for concurrent access.
type Vector[T any] struct {
	data  []T // storage block of exactly Cap slots, nil when Cap == 0
	size  int // number of live values, always <= len(data)
	alloc Allocator[T]
	lc    Lifecycle[T]
}

// Option configures a Vector at construction time.
type Option[T any] func(*Vector[T])

// WithAllocator makes the vector draw its storage from a.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(v *Vector[T]) { v.alloc = a }
}

// WithLifecycle installs the element lifecycle hooks.
func WithLifecycle[T any](lc Lifecycle[T]) Option[T] {
	return func(v *Vector[T]) { v.lc = lc }
}

// New creates an empty vector with no storage.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewLen creates a vector of n default-constructed elements, with
// capacity equal to n. Values of n <= 0 yield an empty vector with no
// storage. Returns an *AllocationError if storage cannot be acquired.
func NewLen[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)
	if n <= 0 {
		return v, nil
	}
	block, err := v.allocator().Allocate(n)
	if err != nil {
		return nil, &AllocationError{Elems: n, Cause: err}
	}
	v.data = block
	v.constructRange(0, n)
	v.size = n
	return v, nil
}

// allocator returns the configured allocator, defaulting to the heap so
// the zero value works without setup.
func (v *Vector[T]) allocator() Allocator[T] {
	if v.alloc == nil {
		return HeapAllocator[T]{}
	}
	return v.alloc
}

// Len returns the number of live values.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of slots in the current storage block.
func (v *Vector[T]) Cap() int { return len(v.data) }

// Elems returns the live values as a slice sharing the vector's storage.
// The slice is invalidated by any operation that reallocates (Append,
// Reserve, Resize, CopyFrom, MoveFrom, Release).
func (v *Vector[T]) Elems() []T { return v.data[:v.size] }

// At returns a pointer to the element at index i.
// The caller must ensure i < Len(); indexes in [Len, Cap) address raw
// storage and reading them is a contract violation.
func (v *Vector[T]) At(i int) *T { return &v.data[i] }

// Get returns the element at index i. The caller must ensure i < Len().
func (v *Vector[T]) Get(i int) T { return v.data[i] }

// Set assigns x to the element at index i. The caller must ensure
// i < Len(); assigning to raw storage is a contract violation.
func (v *Vector[T]) Set(i int, x T) { v.data[i] = x }

// Clone returns an independent copy of the vector, sharing no storage
// with the source. The copy's capacity equals the source's length, not
// its capacity: cloning never carries over spare slots. The source is
// not modified. Returns an *AllocationError if storage cannot be
// acquired, in which case the source is still untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{alloc: v.alloc, lc: v.lc}
	if v.size == 0 {
		return out, nil
	}
	block, err := v.allocator().Allocate(v.size)
	if err != nil {
		return nil, &AllocationError{Elems: v.size, Cause: err}
	}
	v.copyRange(block)
	out.data = block
	out.size = v.size
	return out, nil
}

// Move transfers ownership of the storage and live values to a new
// vector in one step. The source is left empty: zero length, zero
// capacity, no storage. No element is constructed, copied or destroyed.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{data: v.data, size: v.size, alloc: v.alloc, lc: v.lc}
	v.data, v.size = nil, 0
	return out
}

// CopyFrom replaces the vector's contents with an independent copy of
// other's live values, destroying the current values and releasing the
// current storage. Self-assignment is a no-op. The replacement block is
// acquired before anything is torn down, so an allocation failure
// leaves the vector unmodified.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	var block []T
	if other.size > 0 {
		b, err := v.allocator().Allocate(other.size)
		if err != nil {
			return &AllocationError{Elems: other.size, Cause: err}
		}
		block = b
		other.copyRange(block)
	}
	v.release()
	v.data, v.size = block, other.size
	return nil
}

// MoveFrom destroys the vector's current values, releases its storage,
// and adopts other's storage and live values. other is left empty.
// Self-move is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.release()
	v.data, v.size = other.data, other.size
	other.data, other.size = nil, 0
}

// Release destroys all live values and returns the storage block to the
// allocator, leaving the vector empty. Calling it on an empty or
// moved-from vector is a no-op; it never destroys raw slots and never
// returns a block twice.
func (v *Vector[T]) Release() {
	v.release()
}

func (v *Vector[T]) release() {
	if v.data == nil {
		return
	}
	v.destroyRange(0, v.size)
	v.allocator().Deallocate(v.data, len(v.data))
	v.data, v.size = nil, 0
}
