// Package intset provides three interchangeable sets of integers drawn from
// a fixed universe [0, N), each tuned for a different access pattern.
//
// # Implementations
//
//   - BoundedSet: packed bitmap; O(1) Insert/Erase/Test; ascending iteration
//     scans the bitmap live with a bit-scan cursor and allocates nothing.
//   - UnorderedSparseSet: dense member array plus sparse back-reference
//     table; O(1) everything, including iteration over members only;
//     iteration order is unspecified.
//   - SparseSet: packed bitmap plus an ascending member cache, built on the
//     first ordered access and dropped by every mutation. Best when the same
//     membership is iterated many times between mutation bursts.
//
// All three implement Set; BoundedSet and SparseSet implement OrderedSet.
//
// # Quick Start
//
//	s := intset.NewBoundedSet(100)
//	s.Insert(5)
//	s.Insert(21)
//	s.Insert(30)
//
//	for key := range s.All() {
//	    fmt.Println(key) // 5, 21, 30
//	}
//
//	// Members in [21, 30]:
//	for key := range s.Range(s.LowerBound(21), s.UpperBound(30)) {
//	    fmt.Println(key) // 21, 30
//	}
//
// # Bounds
//
// Insert, Erase and Test do not check their key: a key at or above Size()
// is a programming error that panics or leaves the set in an unspecified
// state. InsertChecked, EraseChecked and TestChecked return a *RangeError
// (matching ErrOutOfRange) instead, for keys from untrusted input.
//
// # Concurrency
//
// Sets are not safe for concurrent use. Cursors (BitIterator, SeqIterator)
// and the slices returned by Values borrow the set's storage and are
// invalidated by any mutation of that set.
//
// # Bit Primitives
//
// The bitmap sets use hardware bit-scan and popcount when the CPU provides
// them and a table-driven fallback otherwise. Set INTSET_BITS=table or
// INTSET_BITS=native to override the selection.
package intset
