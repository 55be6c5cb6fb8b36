package vector

// DefaultCapacity is the capacity a vector grows to on its first append
// when it holds no storage.
const DefaultCapacity = 16

// Append constructs a new element from x at the end of the vector,
// growing storage first if needed: an empty block grows to
// DefaultCapacity, a full block doubles. If the Copy hook is set it is
// applied to x, so the caller keeps ownership of what it passed in.
// On allocation failure the vector is unchanged and x is not inserted.
func (v *Vector[T]) Append(x T) error {
	if err := v.growForAppend(); err != nil {
		return err
	}
	if v.lc.Copy != nil {
		v.data[v.size] = v.lc.Copy(&x)
	} else {
		v.data[v.size] = x
	}
	v.size++
	return nil
}

// AppendInit constructs a new element in place at the end of the
// vector: the slot is zeroed, then fn is called to finish construction.
// A nil fn falls back to the Init hook, making AppendInit(nil) a
// default-constructing append. Growth behaves as in Append.
func (v *Vector[T]) AppendInit(fn func(*T)) error {
	if err := v.growForAppend(); err != nil {
		return err
	}
	p := &v.data[v.size]
	var zero T
	*p = zero
	if fn != nil {
		fn(p)
	} else if v.lc.Init != nil {
		v.lc.Init(p)
	}
	v.size++
	return nil
}

func (v *Vector[T]) growForAppend() error {
	switch {
	case len(v.data) == 0:
		return v.Reserve(DefaultCapacity)
	case v.size == len(v.data):
		return v.Reserve(2 * len(v.data))
	}
	return nil
}

// Reserve ensures capacity for at least n elements without changing the
// length or any live value:
//
//   - n below the current length clamps capacity down to exactly the
//     length; no value is destroyed.
//   - n already within capacity is a no-op.
//   - n above capacity reallocates to exactly n slots, moving the live
//     values across in index order.
//
// Growth allocates the new block before touching the old one, so an
// allocation failure leaves the vector in its prior state. Returns an
// *AllocationError on failure.
func (v *Vector[T]) Reserve(n int) error {
	switch {
	case n < v.size:
		return v.reallocate(v.size)
	case n <= len(v.data):
		return nil
	default:
		return v.reallocate(n)
	}
}

// Resize sets the length to n. Growing default-constructs the new tail,
// reserving more capacity first if n exceeds it; shrinking destroys the
// values past n and leaves capacity unchanged. n <= 0 empties the
// vector. Returns an *AllocationError if growth cannot acquire storage,
// in which case the vector is unchanged.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		n = 0
	}
	switch {
	case n > v.size:
		if n > len(v.data) {
			if err := v.Reserve(n); err != nil {
				return err
			}
		}
		v.constructRange(v.size, n)
	case n < v.size:
		v.destroyRange(n, v.size)
	}
	v.size = n
	return nil
}

// reallocate swaps the storage block for one of exactly newCap slots,
// moving the live values across and destroying every old slot before
// the old block goes back to the allocator.
func (v *Vector[T]) reallocate(newCap int) error {
	if newCap == len(v.data) {
		return nil
	}
	var block []T
	if newCap > 0 {
		b, err := v.allocator().Allocate(newCap)
		if err != nil {
			return &AllocationError{Elems: newCap, Cause: err}
		}
		block = b
	}
	v.moveRange(block)
	if v.data != nil {
		v.allocator().Deallocate(v.data, len(v.data))
	}
	v.data = block
	return nil
}
