package vector

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorStats(t *testing.T) {
	elem := int(unsafe.Sizeof(int64(0)))

	v := New[int64]()
	s := v.Stats()
	assert.Zero(t, s.Len)
	assert.Zero(t, s.Cap)
	assert.Zero(t, s.Utilization)
	assert.Equal(t, elem, s.ElemSize)

	for i := 0; i < 4; i++ {
		require.NoError(t, v.Append(int64(i)))
	}
	s = v.Stats()
	assert.Equal(t, 4, s.Len)
	assert.Equal(t, 16, s.Cap)
	assert.Equal(t, 4*elem, s.SizeBytes)
	assert.Equal(t, 16*elem, s.CapBytes)
	assert.InDelta(t, 0.25, s.Utilization, 1e-9)
}

func TestStatsFullAfterSizedConstruct(t *testing.T) {
	v, err := NewLen[byte](10)
	require.NoError(t, err)
	s := v.Stats()
	assert.Equal(t, 10, s.Len)
	assert.Equal(t, 10, s.Cap)
	assert.InDelta(t, 1.0, s.Utilization, 1e-9)
}

func TestArenaMetrics(t *testing.T) {
	a := NewArena(1024)
	assert.Equal(t, 1024, a.ChunkSize())
	assert.Equal(t, 1024, a.BytesCap())
	assert.Zero(t, a.BytesInUse())
	assert.Zero(t, a.Utilization())

	a.Alloc(256, 8)
	assert.Equal(t, 256, a.BytesInUse())
	assert.InDelta(t, 0.25, a.Utilization(), 1e-9)

	a.Alloc(2048, 8) // forces a second chunk
	assert.Equal(t, 2, a.NumChunks())
	assert.GreaterOrEqual(t, a.BytesCap(), 1024+2048)

	a.Reset()
	assert.Zero(t, a.BytesInUse())
	assert.Equal(t, 2, a.NumChunks())
}

func TestSafeVectorStats(t *testing.T) {
	s := NewSafe[int]()
	require.NoError(t, s.Append(1))
	st := s.Stats()
	assert.Equal(t, 1, st.Len)
	assert.Equal(t, 16, st.Cap)
}
