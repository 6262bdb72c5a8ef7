package stablevec

// sparseSlot carries the occupancy tag next to its payload, so slot state is
// a single local read and clearing can never touch a foreign payload.
type sparseSlot[T any] struct {
	value    T
	occupied bool
}

// SparseCore stores one tagged slot per index. It needs no secondary
// occupancy buffer, paying instead at least one tag byte per slot; occupancy
// tests are local to the slot.
type SparseCore[T any] struct {
	slots []sparseSlot[T]
	n     int
}

// NewSparseCore creates an empty SparseCore with room preallocated for
// capacity elements.
func NewSparseCore[T any](capacity int) *SparseCore[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &SparseCore[T]{slots: make([]sparseSlot[T], 0, capacity)}
}

func (c *SparseCore[T]) Cap() int { return len(c.slots) }

func (c *SparseCore[T]) Len() int { return c.n }

func (c *SparseCore[T]) Has(idx int) bool {
	return idx >= 0 && idx < len(c.slots) && c.slots[idx].occupied
}

func (c *SparseCore[T]) Get(idx int) (T, bool) {
	if !c.Has(idx) {
		var zero T
		return zero, false
	}

	return c.slots[idx].value, true
}

func (c *SparseCore[T]) Ptr(idx int) *T {
	if !c.Has(idx) {
		return nil
	}

	return &c.slots[idx].value
}

func (c *SparseCore[T]) InsertAt(idx int, v T) (T, bool) {
	s := &c.slots[idx]
	if s.occupied {
		old := s.value
		s.value = v

		return old, true
	}

	s.value = v
	s.occupied = true
	c.n++

	var zero T
	return zero, false
}

func (c *SparseCore[T]) RemoveAt(idx int) (T, bool) {
	if !c.Has(idx) {
		var zero T
		return zero, false
	}

	s := &c.slots[idx]
	v := s.value
	*s = sparseSlot[T]{}
	c.n--

	return v, true
}

func (c *SparseCore[T]) Push(v T) int {
	idx := len(c.slots)
	c.slots = append(c.slots, sparseSlot[T]{value: v, occupied: true})
	c.n++

	return idx
}

func (c *SparseCore[T]) Grow(n int) {
	if n <= 0 {
		return
	}

	c.slots = append(c.slots, make([]sparseSlot[T], n)...)
}

func (c *SparseCore[T]) Swap(i, j int) {
	c.slots[i], c.slots[j] = c.slots[j], c.slots[i]
}

func (c *SparseCore[T]) Compact() {
	if c.n == len(c.slots) {
		return
	}

	w := 0
	for i := range c.slots {
		if !c.slots[i].occupied {
			continue
		}
		if i != w {
			c.slots[w] = c.slots[i]
			c.slots[i] = sparseSlot[T]{}
		}
		w++
	}

	c.slots = c.slots[:w]
}

func (c *SparseCore[T]) CompactUnordered() {
	if c.n == len(c.slots) {
		return
	}

	hole := 0
	elem := len(c.slots) - 1
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

	c.slots = c.slots[:c.n]
}

func (c *SparseCore[T]) Clear() {
	for i := range c.slots {
		c.slots[i] = sparseSlot[T]{}
	}

	c.slots = c.slots[:0]
	c.n = 0
}

func (c *SparseCore[T]) NextFilled(idx int) (int, bool) {
	if idx < 0 {
		idx = 0
	}

	for i := idx; i < len(c.slots); i++ {
		if c.slots[i].occupied {
			return i, true
		}
	}

	return 0, false
}

func (c *SparseCore[T]) PrevFilled(idx int) (int, bool) {
	if idx >= len(c.slots) {
		idx = len(c.slots) - 1
	}

	for i := idx; i >= 0; i-- {
		if c.slots[i].occupied {
			return i, true
		}
	}

	return 0, false
}

func (c *SparseCore[T]) NextHole(idx int) (int, bool) {
	if idx < 0 {
		idx = 0
	}

	for i := idx; i < len(c.slots); i++ {
		if !c.slots[i].occupied {
			return i, true
		}
	}

	return 0, false
}

func (c *SparseCore[T]) Clone() Core[T] {
	out := &SparseCore[T]{
		slots: make([]sparseSlot[T], len(c.slots)),
		n:     c.n,
	}
	copy(out.slots, c.slots)

	return out
}

func (c *SparseCore[T]) CloneFunc(clone func(T) T) Core[T] {
	out := &SparseCore[T]{slots: make([]sparseSlot[T], len(c.slots))}

	for i := range c.slots {
		if !c.slots[i].occupied {
			continue
		}

		// Tag the slot only after clone returned for its value.
		out.slots[i].value = clone(c.slots[i].value)
		out.slots[i].occupied = true
		out.n++
	}

	return out
}
