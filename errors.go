package stablevec

import "fmt"

// ErrIndexOutOfRange indicates an index at or beyond the current capacity.
//
// It is the panic value of operations with a caller-guaranteed bounds
// precondition: At, Insert and Swap. Lookups (Get, Has, Find*) never fail
// on an out-of-range index; they report absence instead.
type ErrIndexOutOfRange struct {
	Index int
	Cap   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("stablevec: index %d out of range with capacity %d", e.Index, e.Cap)
}

// ErrEmptySlot indicates direct indexing of a tombstone: the index is within
// capacity but the slot holds no element.
//
// It is the panic value of At. Get distinguishes the same condition by
// returning ok == false.
type ErrEmptySlot struct {
	Index int
}

func (e *ErrEmptySlot) Error() string {
	return fmt.Sprintf("stablevec: slot %d is empty", e.Index)
}
