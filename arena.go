package vector

import "unsafe"

// DefaultChunkSize is the default arena chunk size (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk is one slab of arena memory with a bump offset.
type chunk struct {
	buf    []byte
	offset uintptr
}

// Arena is a chunked bump allocator that backs ArenaAllocator. Memory
// is handed out by advancing an offset and reclaimed in bulk: Reset
// rewinds every chunk for reuse, Release drops them. Not
// goroutine-safe.
type Arena struct {
	chunks    []chunk
	chunkSize int
}

// NewArena creates an arena with the given chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// Alloc returns a pointer to size bytes aligned to align. A request
// that does not fit the current chunk opens a new one, so previously
// returned pointers stay valid until Reset or Release.
func (a *Arena) Alloc(size, align uintptr) unsafe.Pointer {
	if a.chunks == nil {
		panic("vector: arena used after Release")
	}
	if size == 0 {
		return nil
	}
	c := &a.chunks[len(a.chunks)-1]
	off := alignUp(c.offset, align)
	if off+size > uintptr(len(c.buf)) {
		a.grow(int(size + align))
		c = &a.chunks[len(a.chunks)-1]
		off = alignUp(c.offset, align)
	}
	c.offset = off + size
	return unsafe.Pointer(&c.buf[off])
}

// Reset rewinds every chunk's offset to zero, keeping the chunks for
// reuse. Blocks handed out earlier are recycled: anything still holding
// one must be released first.
func (a *Arena) Reset() {
	if a.chunks == nil {
		panic("vector: arena used after Release")
	}
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
}

// Release drops all chunks and makes the arena unusable. Any subsequent
// operation panics.
func (a *Arena) Release() {
	a.chunks = nil
}

// grow appends a chunk of at least min bytes.
func (a *Arena) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
}

// alignUp rounds off up to the next multiple of align.
func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) & ^mask
}

// ArenaAllocator serves vector storage from an Arena. Deallocate is a
// no-op: arena memory is reclaimed in bulk by Reset or Release, which
// is why vectors treat every block as uninitialized and zero slots
// before constructing in them.
//
// Intended for element types without pointers. Arena chunks are plain
// byte memory the garbage collector does not scan, so a pointer stored
// in one keeps nothing alive.
type ArenaAllocator[T any] struct {
	arena *Arena
}

// NewArenaAllocator creates an allocator for T on top of a.
func NewArenaAllocator[T any](a *Arena) *ArenaAllocator[T] {
	return &ArenaAllocator[T]{arena: a}
}

// Allocate carves a block of n elements out of the arena, aligned for T.
func (aa *ArenaAllocator[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		// Zero-size elements occupy no storage, but the slice base must
		// not be nil. One arena byte per block keeps each base distinct.
		ptr := aa.arena.Alloc(1, 1)
		return unsafe.Slice((*T)(ptr), n), nil
	}
	ptr := aa.arena.Alloc(size*uintptr(n), unsafe.Alignof(zero))
	return unsafe.Slice((*T)(ptr), n), nil
}

// Deallocate is a no-op; the arena reclaims memory in bulk.
func (aa *ArenaAllocator[T]) Deallocate(block []T, n int) {}
