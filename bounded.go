package intset

import (
	"context"
	"iter"

	"github.com/hupe1980/intset/internal/bitops"
)

// BoundedSet is a packed bitmap over the universe [0, Size()).
//
// Insert, Erase and Test are O(1). Count and Empty scan every word.
// Iteration walks the bitmap live: no member sequence is materialized, and
// each step costs O(1) amortized bit-scan work.
//
// Memory layout:
//
//	┌──────────────────┬──────────────────┬─────┬──────────────────┐
//	│ word 0 (uint64)  │ word 1 (uint64)  │ ... │ word n-1         │
//	│ keys [0,63]      │ keys [64,127]    │     │ tail masked      │
//	└──────────────────┴──────────────────┴─────┴──────────────────┘
//
// Bit i of the bitmap is set iff key i is a member. Bits at or above Size()
// in the last word are always zero.
type BoundedSet struct {
	words    []uint64
	capacity uint
	log      *Logger
}

// NewBoundedSet creates an empty set over [0, capacity).
func NewBoundedSet(capacity uint, opts ...Option) *BoundedSet {
	o := applyOptions(opts)
	return &BoundedSet{
		words:    make([]uint64, bitops.WordsFor(capacity)),
		capacity: capacity,
		log:      o.logger.WithKind("bounded"),
	}
}

// Insert adds key and reports whether it was absent.
// key must be below Size(); use InsertChecked for untrusted keys.
func (s *BoundedSet) Insert(key uint) bool {
	w := &s.words[key>>bitops.WordShift]
	old := *w
	*w |= uint64(1) << (key & bitops.WordMask)
	return old != *w
}

// Erase removes key. key must be below Size().
func (s *BoundedSet) Erase(key uint) {
	s.words[key>>bitops.WordShift] &^= uint64(1) << (key & bitops.WordMask)
}

// Test reports whether key is a member. key must be below Size().
func (s *BoundedSet) Test(key uint) bool {
	return s.words[key>>bitops.WordShift]>>(key&bitops.WordMask)&1 != 0
}

// InsertChecked is Insert, returning a *RangeError for keys outside the universe.
func (s *BoundedSet) InsertChecked(key uint) (bool, error) {
	if err := checkKey(key, s.capacity); err != nil {
		return false, err
	}
	return s.Insert(key), nil
}

// EraseChecked is Erase, returning a *RangeError for keys outside the universe.
func (s *BoundedSet) EraseChecked(key uint) error {
	if err := checkKey(key, s.capacity); err != nil {
		return err
	}
	s.Erase(key)
	return nil
}

// TestChecked is Test, returning a *RangeError for keys outside the universe.
func (s *BoundedSet) TestChecked(key uint) (bool, error) {
	if err := checkKey(key, s.capacity); err != nil {
		return false, err
	}
	return s.Test(key), nil
}

// Count returns the number of members.
func (s *BoundedSet) Count() int {
	return bitops.PopcountWords(s.words)
}

// Empty reports whether the set has no members.
func (s *BoundedSet) Empty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Clear removes every member.
func (s *BoundedSet) Clear() {
	clear(s.words)
}

// Size returns the capacity of the universe.
func (s *BoundedSet) Size() uint {
	return s.capacity
}

// Resize changes the universe to [0, capacity). Members below
// min(old, new) are kept; members at or above the new capacity are dropped.
func (s *BoundedSet) Resize(capacity uint) {
	old := s.capacity
	n := bitops.WordsFor(capacity)
	if n > len(s.words) {
		s.words = append(s.words, make([]uint64, n-len(s.words))...)
	} else {
		clear(s.words[n:])
		s.words = s.words[:n]
	}
	if n > 0 {
		s.words[n-1] &= bitops.TailMask(capacity)
	}
	s.capacity = capacity

	if s.log != nil {
		s.log.LogResize(context.Background(), old, capacity, s.Count())
	}
}

// Swap exchanges the contents of s and other.
func (s *BoundedSet) Swap(other *BoundedSet) {
	s.words, other.words = other.words, s.words
	s.capacity, other.capacity = other.capacity, s.capacity
}

// Begin returns a cursor on the smallest member, or End if the set is empty.
func (s *BoundedSet) Begin() BitIterator {
	return s.cursorAt(0)
}

// End returns the end sentinel.
func (s *BoundedSet) End() BitIterator {
	return BitIterator{slot: endSlot}
}

// Find returns a cursor on key if it is a member, else End.
func (s *BoundedSet) Find(key uint) BitIterator {
	if key < s.capacity && s.Test(key) {
		return s.cursorAt(key)
	}
	return s.End()
}

// LowerBound returns a cursor on the first member >= key.
func (s *BoundedSet) LowerBound(key uint) BitIterator {
	return s.cursorAt(key)
}

// UpperBound returns a cursor on the first member > key.
func (s *BoundedSet) UpperBound(key uint) BitIterator {
	if s.capacity == 0 || key >= s.capacity-1 {
		return s.End()
	}
	return s.cursorAt(key + 1)
}

// EraseAt removes the member under it. It is a no-op for End.
// it is invalidated by the call.
func (s *BoundedSet) EraseAt(it BitIterator) {
	if it.Valid() {
		s.Erase(it.Value())
	}
}

// All yields the members in ascending order, scanning the bitmap live.
func (s *BoundedSet) All() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for it := s.Begin(); it.Valid(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward yields the members in descending order.
func (s *BoundedSet) Backward() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		last := len(s.words) - 1
		for slot := last; slot >= 0; slot-- {
			w := s.words[slot]
			if slot == last {
				w &= bitops.TailMask(s.capacity)
			}
			for w != 0 {
				b := bitops.Msb(w)
				if !yield(uint(slot)<<bitops.WordShift + uint(b)) {
					return
				}
				w &^= uint64(1) << b
			}
		}
	}
}

// Range yields the members from first up to, but excluding, last.
func (s *BoundedSet) Range(first, last BitIterator) iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for it := first; it.Valid() && !it.Equal(last); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// AppendTo appends the members in ascending order to dst.
func (s *BoundedSet) AppendTo(dst []uint) []uint {
	for it := s.Begin(); it.Valid(); it.Next() {
		dst = append(dst, it.Value())
	}
	return dst
}

func (s *BoundedSet) cursorAt(pos uint) BitIterator {
	if pos >= s.capacity {
		return s.End()
	}
	it := BitIterator{
		words:    s.words,
		capacity: s.capacity,
		slot:     int(pos >> bitops.WordShift),
	}
	it.rest = s.words[it.slot] &^ (uint64(1)<<(pos&bitops.WordMask) - 1)
	it.settle()
	return it
}
