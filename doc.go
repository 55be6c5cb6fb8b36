// Package vector implements a generic dynamic array with explicit
// storage and value lifetime management.
//
// # Overview
//
// A Vector owns one contiguous storage block and tracks two separate
// lifecycles inside it: the block itself (allocated and deallocated
// through an Allocator) and the values constructed in its slots. Slots
// below Len hold live values; slots between Len and Cap are raw storage
// no value lives in yet. This separation is what makes the container
// useful for:
//
//   - Element types that own resources and need an explicit destroy step
//   - Arena-backed storage where memory is recycled rather than freed
//   - Predictable growth without the append/cap heuristics of built-in
//     slices
//   - Leak and double-free auditing via CheckedAllocator
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	_ = v.Append(5) // first append reserves 16 slots
//	_ = v.Append(6)
//	_ = v.Append(7)
//
//	for _, x := range v.Elems() {
//		fmt.Println(x)
//	}
//
//	_ = v.Reserve(1024) // moves live values into the larger block
//	_ = v.Resize(2)     // destroys the tail value
//
// # Growth
//
// Append on a vector with no storage reserves DefaultCapacity (16)
// slots; on a full vector it doubles the capacity. Reserve below the
// current length clamps capacity down to exactly the length and never
// destroys a live value. All growth allocates the replacement block
// first, so a failed allocation leaves the vector untouched.
//
// # Element Lifecycles
//
// Types that need more than zero-value construction or plain assignment
// install Lifecycle hooks:
//
//	lc := vector.Lifecycle[Conn]{
//		Destroy: func(c *Conn) { c.Close() },
//	}
//	v := vector.New[Conn](vector.WithLifecycle(lc))
//
// Destroy runs exactly once per slot when its lifetime ends, including
// on hollow moved-from slots after a reallocation. When no hooks are
// set the vector takes bulk copy/clear paths instead of per-element
// calls.
//
// # Ownership
//
// No two vectors ever share a storage block. Clone allocates fresh
// storage sized to the source's length; Move and MoveFrom transfer the
// block and leave the source empty in one step, so a moved-from vector
// is always a valid empty vector and releasing it is a no-op.
//
// # Allocators
//
// Storage comes from an Allocator. HeapAllocator (the default) uses the
// Go heap. ArenaAllocator carves blocks out of a chunked bump Arena for
// pointer-free element types. CheckedAllocator wraps any allocator and
// tracks outstanding blocks, catching leaks and double-frees in tests.
//
// # Thread Safety
//
// Vector is not goroutine-safe. SafeVector wraps one with a mutex:
//
//	s := vector.NewSafe[int]()
//	defer s.Release()
//	_ = s.Append(42)
package vector
