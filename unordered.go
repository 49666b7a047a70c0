package intset

import (
	"context"
	"fmt"
	"iter"
	"sort"

	"github.com/hupe1980/intset/internal/arena"
	"github.com/hupe1980/intset/internal/conv"
)

// UnorderedSparseSet keeps the members in a dense array and maps every key
// of the universe to its dense slot through a sparse back-reference table.
//
// Every operation, including Clear, is O(1) or O(members); iteration visits
// only members. Iteration order is insertion order perturbed by
// swap-on-erase: no ordering is guaranteed.
//
// The dense array is an arena whose capacity is fixed to Size() at
// construction and Resize, so it is never reallocated and the back-references
// (arena.Ref indices) cannot dangle.
type UnorderedSparseSet struct {
	dense  *arena.Fixed[uint]
	sparse []arena.Ref // key -> dense slot, arena.Nil when absent

	// ascending holds while dense is strictly increasing, which makes
	// LowerBound and UpperBound meaningful.
	ascending bool

	log *Logger
}

// NewUnorderedSparseSet creates an empty set over [0, capacity).
// It panics if capacity exceeds arena.MaxSlots.
func NewUnorderedSparseSet(capacity uint, opts ...Option) *UnorderedSparseSet {
	o := applyOptions(opts)
	s := &UnorderedSparseSet{log: o.logger.WithKind("unordered")}
	s.alloc(capacity)
	return s
}

func (s *UnorderedSparseSet) alloc(capacity uint) {
	n, err := conv.UintToInt(capacity)
	if err != nil || uint64(n) > arena.MaxSlots {
		panic(fmt.Sprintf("intset: capacity %d exceeds the dense arena limit", capacity))
	}
	s.dense = arena.NewFixed[uint](n)
	s.sparse = make([]arena.Ref, n)
	s.ascending = true
}

// Insert adds key and reports whether it was absent.
// key must be below Size(); use InsertChecked for untrusted keys.
func (s *UnorderedSparseSet) Insert(key uint) bool {
	if !s.sparse[key].IsNil() {
		return false
	}
	if s.ascending && s.dense.Len() > 0 {
		if _, last := s.dense.Last(); key < last {
			s.ascending = false
		}
	}
	ref, err := s.dense.Append(key)
	if err != nil {
		// Distinct keys below Size() never outnumber the dense slots.
		panic(err)
	}
	s.sparse[key] = ref
	return true
}

// Erase removes key by moving the last dense member into its slot.
// key must be below Size().
func (s *UnorderedSparseSet) Erase(key uint) {
	ref := s.sparse[key]
	if ref.IsNil() {
		return
	}
	if _, last := s.dense.Last(); last != key {
		s.dense.Set(ref, last)
		s.sparse[last] = ref
		s.ascending = false
	}
	s.dense.Pop()
	s.sparse[key] = arena.Nil
	if s.dense.Len() == 0 {
		s.ascending = true
	}
}

// Test reports whether key is a member. key must be below Size().
func (s *UnorderedSparseSet) Test(key uint) bool {
	return !s.sparse[key].IsNil()
}

// InsertChecked is Insert, returning a *RangeError for keys outside the universe.
func (s *UnorderedSparseSet) InsertChecked(key uint) (bool, error) {
	if err := checkKey(key, s.Size()); err != nil {
		return false, err
	}
	return s.Insert(key), nil
}

// EraseChecked is Erase, returning a *RangeError for keys outside the universe.
func (s *UnorderedSparseSet) EraseChecked(key uint) error {
	if err := checkKey(key, s.Size()); err != nil {
		return err
	}
	s.Erase(key)
	return nil
}

// TestChecked is Test, returning a *RangeError for keys outside the universe.
func (s *UnorderedSparseSet) TestChecked(key uint) (bool, error) {
	if err := checkKey(key, s.Size()); err != nil {
		return false, err
	}
	return s.Test(key), nil
}

// Count returns the number of members.
func (s *UnorderedSparseSet) Count() int {
	return s.dense.Len()
}

// Empty reports whether the set has no members.
func (s *UnorderedSparseSet) Empty() bool {
	return s.dense.Len() == 0
}

// Clear removes every member in O(members).
func (s *UnorderedSparseSet) Clear() {
	for _, key := range s.dense.Values() {
		s.sparse[key] = arena.Nil
	}
	s.dense.Reset()
	s.ascending = true
}

// Size returns the capacity of the universe.
func (s *UnorderedSparseSet) Size() uint {
	return uint(len(s.sparse))
}

// Resize reallocates both tables for [0, capacity). All members are
// discarded; this is not an incremental growth.
func (s *UnorderedSparseSet) Resize(capacity uint) {
	old := s.Size()
	s.alloc(capacity)

	if s.log != nil {
		s.log.LogResize(context.Background(), old, capacity, 0)
	}
}

// Swap exchanges the contents of s and other.
func (s *UnorderedSparseSet) Swap(other *UnorderedSparseSet) {
	s.dense, other.dense = other.dense, s.dense
	s.sparse, other.sparse = other.sparse, s.sparse
	s.ascending, other.ascending = other.ascending, s.ascending
}

// Ascending reports whether the dense order is strictly increasing, which
// holds while members were inserted in increasing order and no erase had to
// move another member.
func (s *UnorderedSparseSet) Ascending() bool {
	return s.ascending
}

// Values returns the members in dense order. The slice aliases the set,
// is valid until the next mutation and must not be modified.
func (s *UnorderedSparseSet) Values() []uint {
	return s.dense.Values()
}

// Begin returns a cursor on the first dense member.
func (s *UnorderedSparseSet) Begin() SeqIterator {
	return seqAt(s.dense.Values(), 0)
}

// End returns the end sentinel.
func (s *UnorderedSparseSet) End() SeqIterator {
	v := s.dense.Values()
	return seqAt(v, len(v))
}

// All yields the members in dense order.
func (s *UnorderedSparseSet) All() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for _, key := range s.dense.Values() {
			if !yield(key) {
				return
			}
		}
	}
}

// Backward yields the members in reverse dense order.
func (s *UnorderedSparseSet) Backward() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		v := s.dense.Values()
		for i := len(v) - 1; i >= 0; i-- {
			if !yield(v[i]) {
				return
			}
		}
	}
}

// LowerBound returns a cursor on the first member >= key by binary search
// over the dense array. It returns End and ErrNotAscending unless
// Ascending() holds.
func (s *UnorderedSparseSet) LowerBound(key uint) (SeqIterator, error) {
	if !s.ascending {
		return s.End(), ErrNotAscending
	}
	v := s.dense.Values()
	return seqAt(v, sort.Search(len(v), func(i int) bool { return v[i] >= key })), nil
}

// UpperBound returns a cursor on the first member > key by binary search
// over the dense array. It returns End and ErrNotAscending unless
// Ascending() holds.
func (s *UnorderedSparseSet) UpperBound(key uint) (SeqIterator, error) {
	if !s.ascending {
		return s.End(), ErrNotAscending
	}
	v := s.dense.Values()
	return seqAt(v, sort.Search(len(v), func(i int) bool { return v[i] > key })), nil
}
