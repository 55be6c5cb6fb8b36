package vector

import "sync"

// SafeVector is a mutex-protected wrapper around Vector for concurrent
// access. Accessors return values rather than interior pointers, so no
// reference into the storage block escapes the lock.
type SafeVector[T any] struct {
	mu sync.Mutex
	v  *Vector[T]
}

// NewSafe creates an empty thread-safe vector.
func NewSafe[T any](opts ...Option[T]) *SafeVector[T] {
	return &SafeVector[T]{v: New[T](opts...)}
}

// Append thread-safely appends x.
func (s *SafeVector[T]) Append(x T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Append(x)
}

// AppendInit thread-safely constructs a new element in place via fn.
func (s *SafeVector[T]) AppendInit(fn func(*T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.AppendInit(fn)
}

// Get thread-safely returns the element at index i; i must be < Len().
func (s *SafeVector[T]) Get(i int) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Get(i)
}

// Set thread-safely assigns x at index i; i must be < Len().
func (s *SafeVector[T]) Set(i int, x T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(i, x)
}

// Len thread-safely returns the number of live values.
func (s *SafeVector[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Len()
}

// Cap thread-safely returns the allocated slot count.
func (s *SafeVector[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Cap()
}

// Reserve thread-safely ensures capacity for at least n elements.
func (s *SafeVector[T]) Reserve(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Reserve(n)
}

// Resize thread-safely sets the length to n.
func (s *SafeVector[T]) Resize(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Resize(n)
}

// Snapshot thread-safely returns a copy of the live values.
func (s *SafeVector[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, s.v.Len())
	copy(out, s.v.Elems())
	return out
}

// Clone thread-safely returns an independent single-threaded copy.
func (s *SafeVector[T]) Clone() (*Vector[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Clone()
}

// Release thread-safely destroys all live values and drops the storage.
func (s *SafeVector[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Release()
}
