package stablevec

import "iter"

// Iterators traverse the core's occupancy map directly, skipping tombstones;
// they do not go through the facade's validation path. All of them report an
// exact remaining element count via Len and stay exhausted once their
// cursors meet. Mutating the vector through another path while an iterator
// exists over it is undefined.

// Values iterates over (index, value) pairs in ascending index order. It is
// double-ended: NextBack consumes from the high end without rescanning, and
// both cursors share one exact remaining count.
//
// Obtain one via [StableVec.Values].
type Values[T any, C Core[T]] struct {
	core      C
	front     int
	back      int
	remaining int
}

// Values returns an iterator over (index, value) pairs of the occupied
// slots.
func (sv *StableVec[T, C]) Values() *Values[T, C] {
	return &Values[T, C]{
		core:      sv.core,
		back:      sv.core.Cap() - 1,
		remaining: sv.core.Len(),
	}
}

// Next yields the next pair in ascending index order.
func (it *Values[T, C]) Next() (int, T, bool) {
	if it.remaining == 0 {
		var zero T
		return 0, zero, false
	}

	// remaining > 0 guarantees an occupied slot in [front, back].
	idx, _ := it.core.NextFilled(it.front)
	it.front = idx + 1
	it.remaining--

	v, _ := it.core.Get(idx)

	return idx, v, true
}

// NextBack yields the next pair in descending index order.
func (it *Values[T, C]) NextBack() (int, T, bool) {
	if it.remaining == 0 {
		var zero T
		return 0, zero, false
	}

	idx, _ := it.core.PrevFilled(it.back)
	it.back = idx - 1
	it.remaining--

	v, _ := it.core.Get(idx)

	return idx, v, true
}

// Len returns the exact number of not-yet-visited elements.
func (it *Values[T, C]) Len() int { return it.remaining }

// Ptrs iterates like [Values] but yields (index, *T) pairs for in-place
// mutation.
//
// Obtain one via [StableVec.Ptrs].
type Ptrs[T any, C Core[T]] struct {
	core      C
	front     int
	back      int
	remaining int
}

// Ptrs returns an iterator over (index, pointer) pairs of the occupied
// slots.
func (sv *StableVec[T, C]) Ptrs() *Ptrs[T, C] {
	return &Ptrs[T, C]{
		core:      sv.core,
		back:      sv.core.Cap() - 1,
		remaining: sv.core.Len(),
	}
}

// Next yields the next pair in ascending index order.
func (it *Ptrs[T, C]) Next() (int, *T, bool) {
	if it.remaining == 0 {
		return 0, nil, false
	}

	idx, _ := it.core.NextFilled(it.front)
	it.front = idx + 1
	it.remaining--

	return idx, it.core.Ptr(idx), true
}

// NextBack yields the next pair in descending index order.
func (it *Ptrs[T, C]) NextBack() (int, *T, bool) {
	if it.remaining == 0 {
		return 0, nil, false
	}

	idx, _ := it.core.PrevFilled(it.back)
	it.back = idx - 1
	it.remaining--

	return idx, it.core.Ptr(idx), true
}

// Len returns the exact number of not-yet-visited elements.
func (it *Ptrs[T, C]) Len() int { return it.remaining }

// Indices iterates over the occupied indices only, double-ended.
//
// Obtain one via [StableVec.Indices].
type Indices[T any, C Core[T]] struct {
	core      C
	front     int
	back      int
	remaining int
}

// Indices returns an iterator over the indices of the occupied slots.
func (sv *StableVec[T, C]) Indices() *Indices[T, C] {
	return &Indices[T, C]{
		core:      sv.core,
		back:      sv.core.Cap() - 1,
		remaining: sv.core.Len(),
	}
}

// Next yields the next occupied index in ascending order.
func (it *Indices[T, C]) Next() (int, bool) {
	if it.remaining == 0 {
		return 0, false
	}

	idx, _ := it.core.NextFilled(it.front)
	it.front = idx + 1
	it.remaining--

	return idx, true
}

// NextBack yields the next occupied index in descending order.
func (it *Indices[T, C]) NextBack() (int, bool) {
	if it.remaining == 0 {
		return 0, false
	}

	idx, _ := it.core.PrevFilled(it.back)
	it.back = idx - 1
	it.remaining--

	return idx, true
}

// Len returns the exact number of not-yet-visited indices.
func (it *Indices[T, C]) Len() int { return it.remaining }

// Drain is the consuming iterator: it takes over the vector's storage and
// removes each element as it is yielded. Once the iterator is exhausted the
// vector is empty; the vector must not be mutated through another path while
// a Drain exists.
//
// Obtain one via [StableVec.Drain].
type Drain[T any, C Core[T]] struct {
	core C
	pos  int
}

// Drain returns a consuming iterator over (index, value) pairs.
func (sv *StableVec[T, C]) Drain() *Drain[T, C] {
	return &Drain[T, C]{core: sv.core}
}

// Next removes and yields the element with the lowest remaining index.
func (it *Drain[T, C]) Next() (int, T, bool) {
	idx, ok := it.core.NextFilled(it.pos)
	if !ok {
		var zero T
		return 0, zero, false
	}

	it.pos = idx + 1
	v, _ := it.core.RemoveAt(idx)

	return idx, v, true
}

// Len returns the exact number of elements not yet drained.
func (it *Drain[T, C]) Len() int { return it.core.Len() }

// All returns a range-over-func view of the occupied (index, value) pairs in
// ascending index order:
//
//	for idx, v := range sv.All() { ... }
func (sv *StableVec[T, C]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := sv.Values()
		for idx, v, ok := it.Next(); ok; idx, v, ok = it.Next() {
			if !yield(idx, v) {
				return
			}
		}
	}
}

// Backward returns a range-over-func view in descending index order.
func (sv *StableVec[T, C]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := sv.Values()
		for idx, v, ok := it.NextBack(); ok; idx, v, ok = it.NextBack() {
			if !yield(idx, v) {
				return
			}
		}
	}
}
