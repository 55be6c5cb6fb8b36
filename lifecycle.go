package vector

// Lifecycle bundles the optional element hooks a Vector uses to manage
// value lifetimes. Go types carry no constructors or destructors, so
// element types that own resources (handles, reference counts, pooled
// buffers) declare the relevant steps here. Every field may be nil; a
// nil hook means the zero value / plain assignment is enough for T.
//
// Vectors that exchange elements (Clone, CopyFrom, MoveFrom) should be
// configured with the same Lifecycle.
type Lifecycle[T any] struct {
	// Init finishes default construction of a freshly zeroed slot.
	Init func(*T)

	// Copy produces an independent copy of *src. Nil means plain
	// assignment.
	Copy func(src *T) T

	// Move transfers *src into *dst, leaving *src hollow but alive.
	// Nil means assign then zero the source. A hollow slot is still a
	// live value: Destroy runs on it when its lifetime ends.
	Move func(dst, src *T)

	// Destroy runs exactly once when a slot's lifetime ends, including
	// on hollow moved-from slots. After it returns the slot is zeroed.
	Destroy func(*T)
}

// trivial reports whether T needs no per-element calls, enabling the
// bulk copy/clear paths.
func (lc *Lifecycle[T]) trivial() bool {
	return lc.Init == nil && lc.Copy == nil && lc.Move == nil && lc.Destroy == nil
}

// constructRange starts the lifetime of slots [lo, hi). Storage may be
// recycled arena memory, so slots are zeroed before Init runs.
func (v *Vector[T]) constructRange(lo, hi int) {
	clear(v.data[lo:hi])
	if v.lc.Init == nil {
		return
	}
	for i := lo; i < hi; i++ {
		v.lc.Init(&v.data[i])
	}
}

// destroyRange ends the lifetime of slots [lo, hi) and zeroes them so
// dead slots hold no references the garbage collector would retain.
func (v *Vector[T]) destroyRange(lo, hi int) {
	if v.lc.Destroy != nil {
		for i := lo; i < hi; i++ {
			v.lc.Destroy(&v.data[i])
		}
	}
	clear(v.data[lo:hi])
}

// copyRange copy-constructs the vector's live values into block, which
// must have at least v.size slots.
func (v *Vector[T]) copyRange(block []T) {
	if v.lc.Copy == nil {
		copy(block, v.data[:v.size])
		return
	}
	for i := 0; i < v.size; i++ {
		block[i] = v.lc.Copy(&v.data[i])
	}
}

// moveRange transfers the live values into block and ends the lifetime
// of every old slot. A moved-from slot is hollow but still live, so it
// is destroyed like any other.
func (v *Vector[T]) moveRange(block []T) {
	if v.lc.trivial() {
		copy(block, v.data[:v.size])
		clear(v.data[:v.size])
		return
	}
	for i := 0; i < v.size; i++ {
		src := &v.data[i]
		if v.lc.Move != nil {
			v.lc.Move(&block[i], src)
		} else {
			block[i] = *src
			var zero T
			*src = zero
		}
		if v.lc.Destroy != nil {
			v.lc.Destroy(src)
		}
		var zero T
		*src = zero
	}
}
