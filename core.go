package stablevec

// Core is the storage strategy of a stable vector: a contiguous sequence of
// slots, each either occupied by one value or empty, addressed by a
// non-negative index.
//
// A core has Cap() slots. Every index i with 0 <= i < Cap() addresses an
// existing slot; larger indices address nothing. Occupied slots hold one
// value each, Len() counts them and Len() <= Cap() always holds. Growth
// appends empty slots at increasing indices and never relocates the logical
// address of an occupied slot, even when the backing buffer moves.
//
// Cores own their buffers exclusively; exactly one StableVec drives a core
// at a time. Operations taking indices never fault on out-of-range input
// unless noted: bounds validation for the loud-failure operations lives in
// the facade.
//
// A core must branch on occupancy whenever it touches slot payloads. Empty
// slots carry the zero value of T: every transition out of the occupied
// state zeroes the payload so no tombstone keeps a removed value reachable,
// and clearing or cloning a non-compact core must never copy or retain a
// tombstone's payload.
type Core[T any] interface {
	// Cap returns the total slot count, occupied plus empty.
	Cap() int

	// Len returns the number of occupied slots.
	Len() int

	// Has reports whether idx addresses an occupied slot. It returns false,
	// never faults, for any out-of-range index.
	Has(idx int) bool

	// Get returns the value at idx, or (zero, false) when the slot is empty
	// or out of range.
	Get(idx int) (T, bool)

	// Ptr returns a pointer to the value at idx for in-place mutation, or
	// nil when the slot is empty or out of range. The pointer is valid until
	// the next operation that grows, compacts or clears the core.
	Ptr(idx int) *T

	// InsertAt places v at idx, which must be within capacity (the facade
	// validates). It returns the previous value and true when the slot was
	// occupied; otherwise it occupies the slot and increments Len.
	InsertAt(idx int, v T) (old T, replaced bool)

	// RemoveAt empties the slot at idx and returns its value. Removing an
	// empty or out-of-range slot is a no-op returning (zero, false).
	RemoveAt(idx int) (T, bool)

	// Push appends one occupied slot holding v and returns its index, which
	// equals the capacity before the call.
	Push(v T) int

	// Grow appends n empty slots at increasing indices.
	Grow(n int)

	// Swap exchanges the full slot state, value and occupancy, of two
	// indices within capacity (the facade validates) in O(1).
	Swap(i, j int)

	// Compact moves all occupied slots into the prefix [0, Len()) preserving
	// their relative order, then discards the remaining slots so that
	// Cap() == Len(). Indices issued before the call are no longer
	// meaningful.
	Compact()

	// CompactUnordered is the cheaper compaction: it may swap occupied slots
	// from the tail into empty slots of the prefix, so the relative order of
	// the survivors is unspecified. Ends with Cap() == Len().
	CompactUnordered()

	// Clear empties every occupied slot exactly once, zeroes its payload and
	// resets the capacity to 0. The backing buffer is retained for reuse.
	Clear()

	// NextFilled returns the index of the first occupied slot at or after
	// idx, or (0, false) when there is none.
	NextFilled(idx int) (int, bool)

	// PrevFilled returns the index of the last occupied slot at or before
	// idx, or (0, false) when there is none. Indices beyond capacity are
	// clamped.
	PrevFilled(idx int) (int, bool)

	// NextHole returns the index of the first empty slot at or after idx,
	// or (0, false) when every remaining slot is occupied.
	NextHole(idx int) (int, bool)

	// Clone returns a deep copy of the core's structure with shallow-copied
	// values. Only occupied payloads are copied; tombstones in the clone
	// stay zero. The dynamic type of the result is that of the receiver.
	Clone() Core[T]

	// CloneFunc is Clone with a caller-supplied value copier. The occupancy
	// of each cloned slot becomes observable only after clone returned for
	// its value, so a panicking copier leaves the partial clone consistent.
	CloneFunc(clone func(T) T) Core[T]
}

// Compile-time capability checks for all core implementations.
var (
	_ Core[int] = (*DenseCore[int])(nil)
	_ Core[int] = (*SparseCore[int])(nil)
	_ Core[int] = (*RoaringCore[int])(nil)
)
