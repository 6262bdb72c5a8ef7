package stablevec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFragmented() *DenseVec[string] {
	// occupancy: - b - d e -
	sv := FromSlice([]string{"a", "b", "c", "d", "e", "f"})
	sv.Remove(0)
	sv.Remove(2)
	sv.Remove(5)

	return sv
}

func TestValues_Forward(t *testing.T) {
	sv := newFragmented()
	it := sv.Values()

	require.Equal(t, 3, it.Len())

	var idxs []int
	var vals []string
	for idx, v, ok := it.Next(); ok; idx, v, ok = it.Next() {
		idxs = append(idxs, idx)
		vals = append(vals, v)
	}

	assert.Equal(t, []int{1, 3, 4}, idxs)
	assert.Equal(t, []string{"b", "d", "e"}, vals)
	assert.Equal(t, 0, it.Len())

	// Exhausted iterators stay exhausted.
	_, _, ok := it.Next()
	assert.False(t, ok)
	_, _, ok = it.NextBack()
	assert.False(t, ok)
	assert.Equal(t, 0, it.Len())
}

func TestValues_Backward(t *testing.T) {
	sv := newFragmented()
	it := sv.Values()

	var vals []string
	for _, v, ok := it.NextBack(); ok; _, v, ok = it.NextBack() {
		vals = append(vals, v)
	}

	assert.Equal(t, []string{"e", "d", "b"}, vals)
}

func TestValues_DoubleEnded(t *testing.T) {
	sv := newFragmented()
	it := sv.Values()

	idx, v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "b", v)
	assert.Equal(t, 2, it.Len())

	idx, v, ok = it.NextBack()
	require.True(t, ok)
	assert.Equal(t, 4, idx)
	assert.Equal(t, "e", v)
	assert.Equal(t, 1, it.Len())

	// The cursors meet in the middle exactly once.
	idx, v, ok = it.NextBack()
	require.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.Equal(t, "d", v)

	_, _, ok = it.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, it.Len())
}

func TestValues_LenIsExact(t *testing.T) {
	sv := newFragmented()
	it := sv.Values()

	// Not capacity minus position: three elements over six slots.
	for want := 3; want > 0; want-- {
		assert.Equal(t, want, it.Len())
		_, _, ok := it.Next()
		require.True(t, ok)
	}
	assert.Equal(t, 0, it.Len())
}

func TestIndices(t *testing.T) {
	sv := newFragmented()
	it := sv.Indices()

	require.Equal(t, 3, it.Len())

	idx, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = it.NextBack()
	require.True(t, ok)
	assert.Equal(t, 4, idx)

	idx, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, 3, idx)

	_, ok = it.NextBack()
	assert.False(t, ok)
}

func TestPtrs_MutatesInPlace(t *testing.T) {
	sv := newFragmented()

	it := sv.Ptrs()
	for idx, p, ok := it.Next(); ok; idx, p, ok = it.Next() {
		require.NotNil(t, p, "index %d", idx)
		*p += "!"
	}

	assert.True(t, EqualSlice(sv, []string{"b!", "d!", "e!"}))
}

func TestDrain(t *testing.T) {
	sv := newFragmented()

	d := sv.Drain()
	require.Equal(t, 3, d.Len())

	var idxs []int
	var vals []string
	for idx, v, ok := d.Next(); ok; idx, v, ok = d.Next() {
		idxs = append(idxs, idx)
		vals = append(vals, v)
	}

	assert.Equal(t, []int{1, 3, 4}, idxs)
	assert.Equal(t, []string{"b", "d", "e"}, vals)

	// The vector is consumed.
	assert.Equal(t, 0, d.Len())
	assert.True(t, sv.IsEmpty())
}

// Draining a vector and re-inserting every (index, value) pair into a fresh
// vector reserved to the same capacity reproduces an equal collection.
func TestDrain_RoundTrip(t *testing.T) {
	src := newFragmented()
	reference := src.Clone()
	capacity := src.Cap()

	fresh := NewSparse[string]()
	fresh.Grow(capacity)

	d := src.Drain()
	for idx, v, ok := d.Next(); ok; idx, v, ok = d.Next() {
		fresh.Insert(idx, v)
	}

	assert.True(t, Equal(reference, fresh))
	for i := 0; i < capacity; i++ {
		assert.Equal(t, reference.Has(i), fresh.Has(i), "slot %d", i)
	}
}

func TestAllAndBackward(t *testing.T) {
	sv := newFragmented()

	var forward []string
	for idx, v := range sv.All() {
		require.True(t, sv.Has(idx))
		forward = append(forward, v)
	}
	assert.Equal(t, []string{"b", "d", "e"}, forward)

	var backward []string
	for _, v := range sv.Backward() {
		backward = append(backward, v)
	}
	assert.Equal(t, []string{"e", "d", "b"}, backward)

	// Early break is honored.
	n := 0
	for range sv.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestIterators_EmptyVector(t *testing.T) {
	sv := New[string]()

	_, _, ok := sv.Values().Next()
	assert.False(t, ok)
	_, ok = sv.Indices().NextBack()
	assert.False(t, ok)
	_, _, ok = sv.Drain().Next()
	assert.False(t, ok)
	assert.Equal(t, 0, sv.Values().Len())
}
