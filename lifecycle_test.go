package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lifeCounter instruments every lifecycle event for an element type, so
// tests can prove that constructions and destructions balance out.
type lifeCounter struct {
	inits, copies, moves, destroys int
}

func (c *lifeCounter) lifecycle() Lifecycle[int] {
	return Lifecycle[int]{
		Init: func(p *int) { c.inits++ },
		Copy: func(src *int) int { c.copies++; return *src },
		Move: func(dst, src *int) {
			c.moves++
			*dst = *src
			*src = 0
		},
		Destroy: func(p *int) { c.destroys++ },
	}
}

// constructed counts every event that started a value's lifetime.
func (c *lifeCounter) constructed() int { return c.inits + c.copies + c.moves }

func TestLifecycleBalance(t *testing.T) {
	// The canonical leak scenario: build 3 elements, reserve, move the
	// whole vector elsewhere, release both. Every constructed value
	// must be destroyed exactly once and every block returned.
	var lc lifeCounter
	ca := &CheckedAllocator[int]{}
	opts := []Option[int]{WithAllocator[int](ca), WithLifecycle(lc.lifecycle())}

	v, err := NewLen[int](3, opts...)
	require.NoError(t, err)
	for i, x := range []int{5, 6, 7} {
		v.Set(i, x)
	}
	require.NoError(t, v.Reserve(10))
	require.Equal(t, 10, v.Cap())

	w := New[int](opts...)
	w.MoveFrom(v)
	assert.Equal(t, []int{5, 6, 7}, w.Elems())

	v.Release()
	w.Release()

	assert.Equal(t, lc.constructed(), lc.destroys,
		"constructions (%d) must balance destructions (%d)", lc.constructed(), lc.destroys)
	assert.Equal(t, 3, lc.inits, "one default construction per sized slot")
	assert.Equal(t, 3, lc.moves, "one move per live value during Reserve")
	assert.Zero(t, ca.Outstanding(), "all storage blocks must be returned")
	assert.Equal(t, ca.Allocs(), ca.Frees())
}

func TestMovedFromSlotsDestroyedOnce(t *testing.T) {
	var lc lifeCounter
	v := New[int](WithLifecycle(lc.lifecycle()))
	for i := 0; i < 3; i++ {
		require.NoError(t, v.Append(i))
	}
	require.Equal(t, 3, lc.copies)

	destroysBefore := lc.destroys
	require.NoError(t, v.Reserve(100))

	// Growth moves each live value once and then ends the lifetime of
	// each hollow source slot, exactly once.
	assert.Equal(t, 3, lc.moves)
	assert.Equal(t, destroysBefore+3, lc.destroys)
	assert.Equal(t, []int{0, 1, 2}, v.Elems())

	v.Release()
	assert.Equal(t, lc.constructed(), lc.destroys)
}

func TestResizeShrinkRunsDestroy(t *testing.T) {
	var lc lifeCounter
	v, err := NewLen[int](5, WithLifecycle(lc.lifecycle()))
	require.NoError(t, err)
	require.Equal(t, 5, lc.inits)

	require.NoError(t, v.Resize(2))
	assert.Equal(t, 3, lc.destroys, "shrink must destroy exactly the dropped tail")

	require.NoError(t, v.Resize(4))
	assert.Equal(t, 7, lc.inits, "regrown slots are default-constructed")

	v.Release()
	assert.Equal(t, lc.constructed(), lc.destroys)
}

func TestCloneUsesCopyHook(t *testing.T) {
	var lc lifeCounter
	v := New[int](WithLifecycle(lc.lifecycle()))
	for i := 0; i < 4; i++ {
		require.NoError(t, v.Append(i))
	}
	copiesBefore := lc.copies

	c, err := v.Clone()
	require.NoError(t, err)
	assert.Equal(t, copiesBefore+4, lc.copies, "clone copy-constructs each live element")

	c.Release()
	v.Release()
	assert.Equal(t, lc.constructed(), lc.destroys)
}

func TestDestroyHookSeesValue(t *testing.T) {
	var destroyed []string
	lc := Lifecycle[string]{
		Destroy: func(p *string) { destroyed = append(destroyed, *p) },
	}
	v := New[string](WithLifecycle(lc))
	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, v.Append(s))
	}
	require.NoError(t, v.Resize(1))
	assert.Equal(t, []string{"b", "c"}, destroyed, "destroy runs on the dropped values in index order")

	v.Release()
	assert.Equal(t, []string{"b", "c", "a"}, destroyed)
}

func TestDeadSlotsHoldNoReferences(t *testing.T) {
	v := New[*int]()
	x := 1
	require.NoError(t, v.Append(&x))
	require.NoError(t, v.Resize(0))

	// The dead slot must be zeroed so the pointer is not retained.
	assert.Nil(t, v.data[0])
}

func TestTrivialLifecycleBulkPath(t *testing.T) {
	var lc Lifecycle[int]
	assert.True(t, lc.trivial())
	lc.Destroy = func(*int) {}
	assert.False(t, lc.trivial())

	// With no hooks the behavior is identical, only the mechanism
	// differs: values survive growth and shrink untouched.
	v := New[byte]()
	for i := 0; i < 20; i++ {
		require.NoError(t, v.Append(byte(i)))
	}
	require.NoError(t, v.Reserve(64))
	require.NoError(t, v.Resize(10))
	for i := 0; i < 10; i++ {
		assert.EqualValues(t, i, v.Get(i))
	}
}
