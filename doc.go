// Package stablevec provides a growable, randomly-indexable collection with
// stable indices and O(1) removal.
//
// A [StableVec] hands out a plain integer index for every inserted element.
// Unlike a slice, removing an element never shifts its neighbors: the slot is
// emptied in place (a "tombstone") and every other index keeps addressing the
// same logical element for the collection's entire lifetime. This makes it a
// building block for data structures that reference their elements by
// position, such as graphs, polygon meshes and arenas.
//
// # Quick Start
//
//	sv := stablevec.New[string]()
//	a := sv.Push("alpha")
//	b := sv.Push("beta")
//
//	sv.Remove(a)          // O(1), leaves a tombstone at index a
//	v, ok := sv.Get(b)    // "beta", true — b is still valid
//	_, ok = sv.Get(a)     // false — a was removed
//
// # Storage Cores
//
// The physical slot layout is pluggable. The facade is generic over the
// [Core] capability set and is monomorphized per core, so choosing a layout
// costs no dynamic dispatch:
//
//	sv := stablevec.New[Node]()        // DenseCore: []T + bit-per-slot map
//	sv := stablevec.NewSparse[Node]()  // SparseCore: tagged slot per entry
//	sv := stablevec.NewRoaring[Node]() // RoaringCore: compressed occupancy
//
// DenseCore is the default: it packs values into one buffer and tracks
// occupancy in a separate bitset, minimizing per-slot overhead for small
// value types. SparseCore stores the occupancy tag next to each value, which
// avoids the second buffer at the cost of one tag per slot. RoaringCore keeps
// the packed value buffer but stores occupancy in a compressed roaring
// bitmap, which stays small when live slots are very sparse.
//
// # Index Stability
//
// Indices stay valid across every operation except [StableVec.Compact],
// [StableVec.CompactUnordered] and [StableVec.Clear], which are the
// documented index-invalidating operations. Compaction relocates all live
// elements into the prefix [0, Len()) and shrinks the capacity to the
// element count.
//
// # Memory
//
// The memory requirement is proportional to the number of elements ever
// inserted, not the number currently live; tombstones occupy their slot until
// a compaction. Removed payloads are zeroed so the garbage collector can
// reclaim them immediately. The package performs no I/O and needs nothing
// from the runtime beyond the allocator.
//
// StableVec is not safe for concurrent use; callers that share one across
// goroutines must provide their own synchronization.
package stablevec
