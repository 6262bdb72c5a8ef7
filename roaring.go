package stablevec

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// RoaringCore stores values in one packed buffer, like DenseCore, but keeps
// occupancy in a compressed roaring bitmap. The occupancy structure stays
// small when live slots are very sparse, at the cost of a container lookup
// per occupancy test. Indices are limited to 32 bits.
type RoaringCore[T any] struct {
	buf      []T
	occupied *roaring.Bitmap
}

// NewRoaringCore creates an empty RoaringCore with room preallocated for
// capacity elements.
func NewRoaringCore[T any](capacity int) *RoaringCore[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &RoaringCore[T]{
		buf:      make([]T, 0, capacity),
		occupied: roaring.New(),
	}
}

func (c *RoaringCore[T]) Cap() int { return len(c.buf) }

func (c *RoaringCore[T]) Len() int { return int(c.occupied.GetCardinality()) }

func (c *RoaringCore[T]) Has(idx int) bool {
	return idx >= 0 && idx < len(c.buf) && c.occupied.Contains(uint32(idx))
}

func (c *RoaringCore[T]) Get(idx int) (T, bool) {
	if !c.Has(idx) {
		var zero T
		return zero, false
	}

	return c.buf[idx], true
}

func (c *RoaringCore[T]) Ptr(idx int) *T {
	if !c.Has(idx) {
		return nil
	}

	return &c.buf[idx]
}

func (c *RoaringCore[T]) InsertAt(idx int, v T) (T, bool) {
	var old T
	if c.occupied.Contains(uint32(idx)) {
		old = c.buf[idx]
		c.buf[idx] = v

		return old, true
	}

	c.buf[idx] = v
	c.occupied.Add(uint32(idx))

	return old, false
}

func (c *RoaringCore[T]) RemoveAt(idx int) (T, bool) {
	if !c.Has(idx) {
		var zero T
		return zero, false
	}

	c.occupied.Remove(uint32(idx))
	v := c.buf[idx]

	var zero T
	c.buf[idx] = zero

	return v, true
}

func (c *RoaringCore[T]) Push(v T) int {
	idx := len(c.buf)
	c.buf = append(c.buf, v)
	c.occupied.Add(uint32(idx))

	return idx
}

func (c *RoaringCore[T]) Grow(n int) {
	if n <= 0 {
		return
	}

	c.buf = append(c.buf, make([]T, n)...)
}

func (c *RoaringCore[T]) Swap(i, j int) {
	if i == j {
		return
	}

	oi := c.occupied.Contains(uint32(i))
	oj := c.occupied.Contains(uint32(j))

	c.buf[i], c.buf[j] = c.buf[j], c.buf[i]

	if oi != oj {
		if oj {
			c.occupied.Add(uint32(i))
			c.occupied.Remove(uint32(j))
		} else {
			c.occupied.Remove(uint32(i))
			c.occupied.Add(uint32(j))
		}
	}
}

func (c *RoaringCore[T]) Compact() {
	n := c.Len()
	if n == len(c.buf) {
		return
	}

	w := 0
	for i, ok := c.NextFilled(0); ok; i, ok = c.NextFilled(i + 1) {
		if i != w {
			c.buf[w] = c.buf[i]

			var zero T
			c.buf[i] = zero
		}
		w++
	}

	c.truncate(w)
}

func (c *RoaringCore[T]) CompactUnordered() {
	n := c.Len()
	if n == len(c.buf) {
		return
	}

	hole := 0
	elem := len(c.buf) - 1
	for n > 0 {
		h, ok := c.NextHole(hole)
		e, filled := c.PrevFilled(elem)
		if !ok || !filled || h > e {
			break
		}

		c.Swap(h, e)
		hole = h + 1
		elem = e - 1
	}

	c.truncate(n)
}

func (c *RoaringCore[T]) Clear() {
	for i, ok := c.NextFilled(0); ok; i, ok = c.NextFilled(i + 1) {
		var zero T
		c.buf[i] = zero
	}

	c.occupied.Clear()
	c.buf = c.buf[:0]
}

func (c *RoaringCore[T]) NextFilled(idx int) (int, bool) {
	if idx < 0 {
		idx = 0
	}

	for i := idx; i < len(c.buf); i++ {
		if c.occupied.Contains(uint32(i)) {
			return i, true
		}
	}

	return 0, false
}

func (c *RoaringCore[T]) PrevFilled(idx int) (int, bool) {
	if idx >= len(c.buf) {
		idx = len(c.buf) - 1
	}

	for i := idx; i >= 0; i-- {
		if c.occupied.Contains(uint32(i)) {
			return i, true
		}
	}

	return 0, false
}

func (c *RoaringCore[T]) NextHole(idx int) (int, bool) {
	if idx < 0 {
		idx = 0
	}

	for i := idx; i < len(c.buf); i++ {
		if !c.occupied.Contains(uint32(i)) {
			return i, true
		}
	}

	return 0, false
}

func (c *RoaringCore[T]) Clone() Core[T] {
	out := &RoaringCore[T]{
		buf:      make([]T, len(c.buf)),
		occupied: c.occupied.Clone(),
	}

	for i, ok := c.NextFilled(0); ok; i, ok = c.NextFilled(i + 1) {
		out.buf[i] = c.buf[i]
	}

	return out
}

func (c *RoaringCore[T]) CloneFunc(clone func(T) T) Core[T] {
	out := &RoaringCore[T]{
		buf:      make([]T, len(c.buf)),
		occupied: roaring.New(),
	}

	for i, ok := c.NextFilled(0); ok; i, ok = c.NextFilled(i + 1) {
		out.buf[i] = clone(c.buf[i])
		out.occupied.Add(uint32(i))
	}

	return out
}

func (c *RoaringCore[T]) truncate(n int) {
	c.buf = c.buf[:n]

	occ := roaring.New()
	if n > 0 {
		occ.AddRange(0, uint64(n))
	}
	c.occupied = occ
}
