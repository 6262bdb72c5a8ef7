package stablevec

import (
	"github.com/bits-and-blooms/bitset"
)

// DenseCore stores values in one packed buffer and tracks occupancy in a
// separate bit-per-slot map. It is the default core: per-slot overhead is a
// single bit, at the cost of a second buffer and a bit scan when skipping
// tombstones.
type DenseCore[T any] struct {
	buf      []T
	occupied *bitset.BitSet
	n        int
}

// NewDenseCore creates an empty DenseCore with room preallocated for
// capacity elements.
func NewDenseCore[T any](capacity int) *DenseCore[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &DenseCore[T]{
		buf:      make([]T, 0, capacity),
		occupied: bitset.New(uint(capacity)),
	}
}

func (c *DenseCore[T]) Cap() int { return len(c.buf) }

func (c *DenseCore[T]) Len() int { return c.n }

func (c *DenseCore[T]) Has(idx int) bool {
	return idx >= 0 && idx < len(c.buf) && c.occupied.Test(uint(idx))
}

func (c *DenseCore[T]) Get(idx int) (T, bool) {
	if !c.Has(idx) {
		var zero T
		return zero, false
	}

	return c.buf[idx], true
}

func (c *DenseCore[T]) Ptr(idx int) *T {
	if !c.Has(idx) {
		return nil
	}

	return &c.buf[idx]
}

func (c *DenseCore[T]) InsertAt(idx int, v T) (T, bool) {
	var old T
	if c.occupied.Test(uint(idx)) {
		old = c.buf[idx]
		c.buf[idx] = v

		return old, true
	}

	// Write the value before flipping the bit so the slot is never
	// observable as occupied while holding stale memory.
	c.buf[idx] = v
	c.occupied.Set(uint(idx))
	c.n++

	return old, false
}

func (c *DenseCore[T]) RemoveAt(idx int) (T, bool) {
	if !c.Has(idx) {
		var zero T
		return zero, false
	}

	// Flip the bit first, then move the value out and zero the slot so the
	// tombstone keeps nothing reachable.
	c.occupied.Clear(uint(idx))
	v := c.buf[idx]

	var zero T
	c.buf[idx] = zero
	c.n--

	return v, true
}

func (c *DenseCore[T]) Push(v T) int {
	idx := len(c.buf)
	c.buf = append(c.buf, v)
	c.occupied.Set(uint(idx))
	c.n++

	return idx
}

func (c *DenseCore[T]) Grow(n int) {
	if n <= 0 {
		return
	}

	c.buf = append(c.buf, make([]T, n)...)
}

func (c *DenseCore[T]) Swap(i, j int) {
	if i == j {
		return
	}

	oi := c.occupied.Test(uint(i))
	oj := c.occupied.Test(uint(j))

	c.buf[i], c.buf[j] = c.buf[j], c.buf[i]
	c.occupied.SetTo(uint(i), oj)
	c.occupied.SetTo(uint(j), oi)
}

func (c *DenseCore[T]) Compact() {
	if c.n == len(c.buf) {
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

func (c *DenseCore[T]) CompactUnordered() {
	if c.n == len(c.buf) {
		return
	}

	// Fill holes from the front with elements from the back, one swap per
	// relocated element.
	hole := 0
	elem := len(c.buf) - 1
	for c.n > 0 {
		h, ok := c.NextHole(hole)
		e, filled := c.PrevFilled(elem)
		if !ok || !filled || h > e {
			break
		}

		c.Swap(h, e)
		hole = h + 1
		elem = e - 1
	}

	c.truncate(c.n)
}

func (c *DenseCore[T]) Clear() {
	for i, ok := c.NextFilled(0); ok; i, ok = c.NextFilled(i + 1) {
		var zero T
		c.buf[i] = zero
	}

	c.occupied.ClearAll()
	c.buf = c.buf[:0]
	c.n = 0
}

func (c *DenseCore[T]) NextFilled(idx int) (int, bool) {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.buf) {
		return 0, false
	}

	i, ok := c.occupied.NextSet(uint(idx))
	if !ok || int(i) >= len(c.buf) {
		return 0, false
	}

	return int(i), true
}

func (c *DenseCore[T]) PrevFilled(idx int) (int, bool) {
	if idx >= len(c.buf) {
		idx = len(c.buf) - 1
	}

	for i := idx; i >= 0; i-- {
		if c.occupied.Test(uint(i)) {
			return i, true
		}
	}

	return 0, false
}

func (c *DenseCore[T]) NextHole(idx int) (int, bool) {
	if idx < 0 {
		idx = 0
	}

	for i := idx; i < len(c.buf); i++ {
		if !c.occupied.Test(uint(i)) {
			return i, true
		}
	}

	return 0, false
}

func (c *DenseCore[T]) Clone() Core[T] {
	out := &DenseCore[T]{
		buf:      make([]T, len(c.buf)),
		occupied: c.occupied.Clone(),
		n:        c.n,
	}

	// Copy only occupied payloads; tombstones in the clone stay zero.
	for i, ok := c.NextFilled(0); ok; i, ok = c.NextFilled(i + 1) {
		out.buf[i] = c.buf[i]
	}

	return out
}

func (c *DenseCore[T]) CloneFunc(clone func(T) T) Core[T] {
	out := &DenseCore[T]{
		buf:      make([]T, len(c.buf)),
		occupied: bitset.New(uint(len(c.buf))),
	}

	// The bit is set only after clone returned, so a panicking copier
	// leaves the partial clone occupancy-consistent.
	for i, ok := c.NextFilled(0); ok; i, ok = c.NextFilled(i + 1) {
		out.buf[i] = clone(c.buf[i])
		out.occupied.Set(uint(i))
		out.n++
	}

	return out
}

// truncate discards all slots at or beyond n and marks the surviving prefix
// fully occupied. Only valid directly after a compaction pass has moved all
// elements into [0, n).
func (c *DenseCore[T]) truncate(n int) {
	c.buf = c.buf[:n]

	occ := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		occ.Set(uint(i))
	}
	c.occupied = occ
}
