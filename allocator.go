package vector

import "fmt"

// Allocator provides raw storage for vector elements. Implementations
// hand out blocks sized for an exact element count; block contents are
// uninitialized and must not be read before a value is constructed in
// them.
type Allocator[T any] interface {
	// Allocate returns storage for exactly n elements. n <= 0 yields a
	// nil block and no error.
	Allocate(n int) ([]T, error)

	// Deallocate releases a block previously obtained from Allocate on
	// this allocator. n must be the element count the block was
	// allocated with; passing anything else is a contract violation.
	Deallocate(block []T, n int)
}

// HeapAllocator draws storage from the Go heap. Deallocate only drops
// the reference; reclamation is the garbage collector's job. It is
// stateless and safe for concurrent use.
type HeapAllocator[T any] struct{}

// Allocate returns a freshly made block of n elements.
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate is a no-op for heap storage.
func (HeapAllocator[T]) Deallocate(block []T, n int) {}

// CheckedAllocator wraps another allocator and tracks every outstanding
// block, so tests can assert that a vector neither leaks storage nor
// returns a block twice. A positive Limit caps the total live elements;
// allocations past the budget fail with ErrLimit, which lets failure
// paths be exercised deterministically.
type CheckedAllocator[T any] struct {
	Inner Allocator[T] // nil means HeapAllocator
	Limit int          // max live elements, 0 = unlimited

	allocs int
	frees  int
	live   int
	nout   int
	blocks map[*T][]int // first slot -> outstanding block sizes
}

func (c *CheckedAllocator[T]) inner() Allocator[T] {
	if c.Inner == nil {
		return HeapAllocator[T]{}
	}
	return c.Inner
}

// Allocate forwards to the inner allocator, recording the block.
func (c *CheckedAllocator[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if c.Limit > 0 && c.live+n > c.Limit {
		return nil, fmt.Errorf("%w: %d live + %d requested > %d", ErrLimit, c.live, n, c.Limit)
	}
	block, err := c.inner().Allocate(n)
	if err != nil {
		return nil, err
	}
	if c.blocks == nil {
		c.blocks = make(map[*T][]int)
	}
	// Blocks are keyed by their first slot. Zero-size element types all
	// share one base address, so each key holds the multiset of
	// outstanding block sizes rather than a single entry.
	key := &block[0]
	c.blocks[key] = append(c.blocks[key], n)
	c.allocs++
	c.nout++
	c.live += n
	return block, nil
}

// Deallocate forwards to the inner allocator after checking that the
// block is outstanding and the size matches. Misuse panics: a freed or
// foreign block indicates a double-free or aliased ownership.
func (c *CheckedAllocator[T]) Deallocate(block []T, n int) {
	if len(block) == 0 {
		return
	}
	key := &block[0]
	sizes, ok := c.blocks[key]
	if !ok {
		panic("vector: deallocate of unknown or already freed block")
	}
	found := -1
	for i, got := range sizes {
		if got == n {
			found = i
			break
		}
	}
	if found < 0 {
		panic(fmt.Sprintf("vector: deallocate size %d, block was allocated with %v", n, sizes))
	}
	sizes[found] = sizes[len(sizes)-1]
	sizes = sizes[:len(sizes)-1]
	if len(sizes) == 0 {
		delete(c.blocks, key)
	} else {
		c.blocks[key] = sizes
	}
	c.frees++
	c.nout--
	c.live -= n
	c.inner().Deallocate(block, n)
}

// Outstanding returns the number of blocks allocated but not yet freed.
func (c *CheckedAllocator[T]) Outstanding() int { return c.nout }

// LiveElems returns the total element count across outstanding blocks.
func (c *CheckedAllocator[T]) LiveElems() int { return c.live }

// Allocs returns the number of successful allocations so far.
func (c *CheckedAllocator[T]) Allocs() int { return c.allocs }

// Frees returns the number of deallocations so far.
func (c *CheckedAllocator[T]) Frees() int { return c.frees }
