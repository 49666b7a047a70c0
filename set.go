package intset

import "iter"

// Set is the capability surface shared by every set in this package.
//
// Keys are drawn from the universe [0, Size()). None of the implementations
// is safe for concurrent use; callers sharing a set across goroutines must
// serialize every call, including reads (SparseSet rebuilds its cache from
// read paths).
type Set interface {
	// Insert adds key and reports whether it was absent.
	Insert(key uint) bool
	// Erase removes key. Erasing an absent key is a no-op.
	Erase(key uint)
	// Test reports whether key is a member.
	Test(key uint) bool
	// Count returns the number of members.
	Count() int
	// Empty reports whether the set has no members.
	Empty() bool
	// Clear removes every member.
	Clear()
	// Resize changes the universe to [0, capacity).
	Resize(capacity uint)
	// Size returns the capacity of the universe.
	Size() uint
	// All yields every member once.
	All() iter.Seq[uint]

	// InsertChecked is Insert with a bounds check.
	InsertChecked(key uint) (bool, error)
	// EraseChecked is Erase with a bounds check.
	EraseChecked(key uint) error
	// TestChecked is Test with a bounds check.
	TestChecked(key uint) (bool, error)
}

// OrderedSet is a Set whose iteration is ascending.
type OrderedSet interface {
	Set
	// Backward yields every member in descending order.
	Backward() iter.Seq[uint]
}

var (
	_ OrderedSet = (*BoundedSet)(nil)
	_ OrderedSet = (*SparseSet)(nil)
	_ Set        = (*UnorderedSparseSet)(nil)
)
