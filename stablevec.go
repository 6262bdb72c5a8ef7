package stablevec

import (
	"fmt"
	"iter"
	"strings"
)

// StableVec is a growable collection with stable indices and O(1) removal,
// generic over its storage core. See the package documentation for an
// overview.
//
// All operations are built purely on the [Core] capability set; the facade
// validates indices and delegates slot-level work to the core.
type StableVec[T any, C Core[T]] struct {
	core C
}

// Convenience aliases for the provided cores.
type (
	// DenseVec is a StableVec backed by a DenseCore.
	DenseVec[T any] = StableVec[T, *DenseCore[T]]
	// SparseVec is a StableVec backed by a SparseCore.
	SparseVec[T any] = StableVec[T, *SparseCore[T]]
	// RoaringVec is a StableVec backed by a RoaringCore.
	RoaringVec[T any] = StableVec[T, *RoaringCore[T]]
)

// New creates an empty stable vector backed by a DenseCore.
func New[T any](opts ...Option) *DenseVec[T] {
	o := applyOptions(opts)

	return &DenseVec[T]{core: NewDenseCore[T](o.capacity)}
}

// NewSparse creates an empty stable vector backed by a SparseCore.
func NewSparse[T any](opts ...Option) *SparseVec[T] {
	o := applyOptions(opts)

	return &SparseVec[T]{core: NewSparseCore[T](o.capacity)}
}

// NewRoaring creates an empty stable vector backed by a RoaringCore.
func NewRoaring[T any](opts ...Option) *RoaringVec[T] {
	o := applyOptions(opts)

	return &RoaringVec[T]{core: NewRoaringCore[T](o.capacity)}
}

// NewWithCore creates a stable vector driving the given core. The caller
// hands over exclusive ownership of the core.
func NewWithCore[T any, C Core[T]](core C) *StableVec[T, C] {
	return &StableVec[T, C]{core: core}
}

// FromSlice creates a dense stable vector with one occupied slot per value,
// in order, at indices 0..len(vals)-1.
func FromSlice[T any](vals []T) *DenseVec[T] {
	sv := New[T](WithCapacity(len(vals)))
	sv.ExtendSlice(vals)

	return sv
}

// Push appends v and returns its index, which equals Cap() before the call.
// The returned index stays valid until the element is removed or the vector
// is compacted or cleared.
func (sv *StableVec[T, C]) Push(v T) int {
	return sv.core.Push(v)
}

// Insert places v at idx and reports what it replaced: the previous value
// and true when the slot was occupied, the zero value and false when it was
// empty. The slot must exist; Insert panics with *ErrIndexOutOfRange when
// idx >= Cap() (reserve first). The vector is unchanged by a failed call.
func (sv *StableVec[T, C]) Insert(idx int, v T) (T, bool) {
	sv.checkRange(idx)

	return sv.core.InsertAt(idx, v)
}

// InsertIntoHole places v at idx, silently reserving through idx when the
// slot does not exist yet and silently discarding any previous occupant.
// This is the historical discard-old-value counterpart of Insert; it only
// panics on a negative index.
func (sv *StableVec[T, C]) InsertIntoHole(idx int, v T) {
	if idx < 0 {
		panic(&ErrIndexOutOfRange{Index: idx, Cap: sv.core.Cap()})
	}
	if idx >= sv.core.Cap() {
		sv.core.Grow(idx + 1 - sv.core.Cap())
	}

	sv.core.InsertAt(idx, v)
}

// Remove empties the slot at idx and returns its value. Removing an empty or
// out-of-range slot is not an error: it returns (zero, false) and changes
// nothing.
func (sv *StableVec[T, C]) Remove(idx int) (T, bool) {
	return sv.core.RemoveAt(idx)
}

// RemoveFirst removes and returns the element with the lowest index, or
// (zero, false) when the vector is empty.
func (sv *StableVec[T, C]) RemoveFirst() (T, bool) {
	if idx, ok := sv.core.NextFilled(0); ok {
		return sv.core.RemoveAt(idx)
	}

	var zero T
	return zero, false
}

// RemoveLast removes and returns the element with the highest index, or
// (zero, false) when the vector is empty. Finding that element costs a scan
// from the back; callers that know the index should use Remove.
func (sv *StableVec[T, C]) RemoveLast() (T, bool) {
	if idx, ok := sv.core.PrevFilled(sv.core.Cap() - 1); ok {
		return sv.core.RemoveAt(idx)
	}

	var zero T
	return zero, false
}

// Get returns the value at idx, or (zero, false) when the slot is empty or
// out of range.
func (sv *StableVec[T, C]) Get(idx int) (T, bool) {
	return sv.core.Get(idx)
}

// Ptr returns a pointer to the value at idx for in-place mutation, or nil
// when the slot is empty or out of range. The pointer is invalidated by
// operations that grow, compact or clear the vector.
func (sv *StableVec[T, C]) Ptr(idx int) *T {
	return sv.core.Ptr(idx)
}

// At returns the value at idx and panics when it does not exist: with
// *ErrIndexOutOfRange when idx >= Cap(), with *ErrEmptySlot when the slot is
// a tombstone. Use Get when absence is an expected outcome.
func (sv *StableVec[T, C]) At(idx int) T {
	sv.checkRange(idx)

	v, ok := sv.core.Get(idx)
	if !ok {
		panic(&ErrEmptySlot{Index: idx})
	}

	return v
}

// Has reports whether idx addresses an occupied slot.
func (sv *StableVec[T, C]) Has(idx int) bool {
	return sv.core.Has(idx)
}

// Contains is an alias for Has.
func (sv *StableVec[T, C]) Contains(idx int) bool {
	return sv.core.Has(idx)
}

// First returns the element with the lowest index.
func (sv *StableVec[T, C]) First() (T, bool) {
	if idx, ok := sv.core.NextFilled(0); ok {
		return sv.core.Get(idx)
	}

	var zero T
	return zero, false
}

// Last returns the element with the highest index.
func (sv *StableVec[T, C]) Last() (T, bool) {
	if idx, ok := sv.core.PrevFilled(sv.core.Cap() - 1); ok {
		return sv.core.Get(idx)
	}

	var zero T
	return zero, false
}

// FirstIndex returns the lowest occupied index.
func (sv *StableVec[T, C]) FirstIndex() (int, bool) {
	return sv.core.NextFilled(0)
}

// LastIndex returns the highest occupied index.
func (sv *StableVec[T, C]) LastIndex() (int, bool) {
	return sv.core.PrevFilled(sv.core.Cap() - 1)
}

// FindFunc scans in ascending index order and returns the first element
// satisfying pred, with its index.
func (sv *StableVec[T, C]) FindFunc(pred func(T) bool) (int, T, bool) {
	for idx, ok := sv.core.NextFilled(0); ok; idx, ok = sv.core.NextFilled(idx + 1) {
		v, _ := sv.core.Get(idx)
		if pred(v) {
			return idx, v, true
		}
	}

	var zero T
	return 0, zero, false
}

// FindLastFunc scans in descending index order and returns the last element
// satisfying pred, with its index.
func (sv *StableVec[T, C]) FindLastFunc(pred func(T) bool) (int, T, bool) {
	for idx, ok := sv.core.PrevFilled(sv.core.Cap() - 1); ok; idx, ok = sv.core.PrevFilled(idx - 1) {
		v, _ := sv.core.Get(idx)
		if pred(v) {
			return idx, v, true
		}
	}

	var zero T
	return 0, zero, false
}

// Retain removes every element for which pred returns false. Elements are
// visited in ascending index order; removal during the scan neither skips
// nor revisits a slot.
func (sv *StableVec[T, C]) Retain(pred func(T) bool) {
	sv.RetainIndexed(func(_ int, v T) bool { return pred(v) })
}

// RetainIndexed is Retain with the index passed to the predicate.
func (sv *StableVec[T, C]) RetainIndexed(pred func(int, T) bool) {
	for idx, ok := sv.core.NextFilled(0); ok; idx, ok = sv.core.NextFilled(idx + 1) {
		v, _ := sv.core.Get(idx)
		if !pred(idx, v) {
			sv.core.RemoveAt(idx)
		}
	}
}

// Reserve appends additional empty slots. Capacity only ever grows; the new
// slots are addressable immediately (Get reports them absent, Insert may
// fill them).
func (sv *StableVec[T, C]) Reserve(additional int) {
	sv.core.Grow(additional)
}

// ReserveFor grows the vector so that minIndex < Cap(), creating empty slots
// as needed. A minIndex already within capacity is a no-op.
func (sv *StableVec[T, C]) ReserveFor(minIndex int) {
	if minIndex >= sv.core.Cap() {
		sv.core.Grow(minIndex + 1 - sv.core.Cap())
	}
}

// Grow appends exactly count empty slots.
func (sv *StableVec[T, C]) Grow(count int) {
	sv.core.Grow(count)
}

// Swap exchanges the full slot state of two indices in O(1), whether the
// slots are occupied or empty. Both must be within capacity or Swap panics
// with *ErrIndexOutOfRange, leaving the vector unchanged.
func (sv *StableVec[T, C]) Swap(i, j int) {
	sv.checkRange(i)
	sv.checkRange(j)

	sv.core.Swap(i, j)
}

// Compact relocates all elements into the prefix [0, Len()) preserving their
// relative order and shrinks the capacity to the element count. This
// invalidates all previously issued indices; it is, together with
// CompactUnordered and Clear, the sole exception to index stability.
func (sv *StableVec[T, C]) Compact() {
	sv.core.Compact()
}

// CompactUnordered compacts by swapping elements from the tail into holes
// near the front: cheaper than Compact, but the relative order of the
// survivors is unspecified. Invalidates all previously issued indices.
func (sv *StableVec[T, C]) CompactUnordered() {
	sv.core.CompactUnordered()
}

// Clear removes all elements and resets the capacity to 0. Previously issued
// indices are no longer meaningful.
func (sv *StableVec[T, C]) Clear() {
	sv.core.Clear()
}

// Extend appends every value produced by seq via repeated Push.
func (sv *StableVec[T, C]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		sv.core.Push(v)
	}
}

// ExtendSlice appends every value of vals via repeated Push.
func (sv *StableVec[T, C]) ExtendSlice(vals []T) {
	for _, v := range vals {
		sv.core.Push(v)
	}
}

// Len returns the number of elements.
func (sv *StableVec[T, C]) Len() int { return sv.core.Len() }

// Cap returns the total slot count, occupied plus empty. Len() <= Cap()
// always holds.
func (sv *StableVec[T, C]) Cap() int { return sv.core.Cap() }

// IsEmpty reports whether the vector holds no elements.
func (sv *StableVec[T, C]) IsEmpty() bool { return sv.core.Len() == 0 }

// IsCompact reports whether no slot is a tombstone.
func (sv *StableVec[T, C]) IsCompact() bool { return sv.core.Len() == sv.core.Cap() }

// NextIndex returns the index the next Push will return.
func (sv *StableVec[T, C]) NextIndex() int { return sv.core.Cap() }

// Clone returns a deep copy sharing no state with the receiver. Values are
// copied shallowly; tombstone payloads are never read. The clone's occupancy
// exactly matches the source's.
func (sv *StableVec[T, C]) Clone() *StableVec[T, C] {
	return &StableVec[T, C]{core: sv.core.Clone().(C)}
}

// CloneFunc is Clone with a caller-supplied value copier, applied once per
// element.
func (sv *StableVec[T, C]) CloneFunc(clone func(T) T) *StableVec[T, C] {
	return &StableVec[T, C]{core: sv.core.CloneFunc(clone).(C)}
}

// String renders every slot in index order, tombstones as "-".
func (sv *StableVec[T, C]) String() string {
	var b strings.Builder
	b.WriteByte('[')

	for idx := 0; idx < sv.core.Cap(); idx++ {
		if idx > 0 {
			b.WriteString(", ")
		}
		if v, ok := sv.core.Get(idx); ok {
			fmt.Fprintf(&b, "%v", v)
		} else {
			b.WriteByte('-')
		}
	}
	b.WriteByte(']')

	return b.String()
}

func (sv *StableVec[T, C]) checkRange(idx int) {
	if idx < 0 || idx >= sv.core.Cap() {
		panic(&ErrIndexOutOfRange{Index: idx, Cap: sv.core.Cap()})
	}
}

// Equal reports whether two stable vectors hold equal values in the same
// logical order, regardless of core type, tombstone placement or capacity.
func Equal[T comparable, CA Core[T], CB Core[T]](a *StableVec[T, CA], b *StableVec[T, CB]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[TA any, TB any, CA Core[TA], CB Core[TB]](a *StableVec[TA, CA], b *StableVec[TB, CB], eq func(TA, TB) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	ia := a.Values()
	ib := b.Values()
	for {
		_, va, oka := ia.Next()
		_, vb, okb := ib.Next()
		if !oka || !okb {
			return oka == okb
		}
		if !eq(va, vb) {
			return false
		}
	}
}

// EqualSlice reports whether the logical element sequence of sv equals vals.
func EqualSlice[T comparable, C Core[T]](sv *StableVec[T, C], vals []T) bool {
	if sv.Len() != len(vals) {
		return false
	}

	i := 0
	it := sv.Values()
	for _, v, ok := it.Next(); ok; _, v, ok = it.Next() {
		if v != vals[i] {
			return false
		}
		i++
	}

	return true
}

// ContainsValue reports whether any element equals v.
func ContainsValue[T comparable, C Core[T]](sv *StableVec[T, C], v T) bool {
	_, _, ok := sv.FindFunc(func(e T) bool { return e == v })

	return ok
}
