package vector

import "unsafe"

// Stats is a snapshot of a vector's storage accounting.
type Stats struct {
	Len         int     // live values
	Cap         int     // allocated slots
	ElemSize    int     // bytes per slot
	SizeBytes   int     // bytes occupied by live values
	CapBytes    int     // bytes of allocated storage
	Utilization float64 // SizeBytes / CapBytes, 0 when no storage
}

// Stats returns a snapshot of the vector's storage accounting.
func (v *Vector[T]) Stats() Stats {
	var zero T
	elem := int(unsafe.Sizeof(zero))
	s := Stats{
		Len:       v.size,
		Cap:       len(v.data),
		ElemSize:  elem,
		SizeBytes: v.size * elem,
		CapBytes:  len(v.data) * elem,
	}
	if s.CapBytes > 0 {
		s.Utilization = float64(s.SizeBytes) / float64(s.CapBytes)
	}
	return s
}

// BytesInUse returns the total bytes currently bump-allocated in the
// arena, including alignment padding.
func (a *Arena) BytesInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

// BytesCap returns the total capacity in bytes of all chunks.
func (a *Arena) BytesCap() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// NumChunks returns the number of chunks the arena currently holds.
func (a *Arena) NumChunks() int { return len(a.chunks) }

// ChunkSize returns the default chunk size used by this arena.
func (a *Arena) ChunkSize() int { return a.chunkSize }

// Utilization returns the ratio of bytes in use to total capacity
// (0.0 to 1.0). Returns 0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.BytesCap()
	if capacity == 0 {
		return 0
	}
	return float64(a.BytesInUse()) / float64(capacity)
}

// Stats thread-safely returns the wrapped vector's storage snapshot.
func (s *SafeVector[T]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Stats()
}
