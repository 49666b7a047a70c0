package intset

import (
	"context"
	"iter"
	"sort"

	"github.com/hupe1980/intset/internal/bitops"
)

// cacheState is the state of a SparseSet's ordered member cache.
type cacheState uint8

const (
	// cacheDirty holds no sequence; the next ordered access rebuilds it.
	cacheDirty cacheState = iota
	// cacheBuilt holds the ascending list of set bits.
	cacheBuilt
)

// orderCache is the lazily materialized ascending member sequence.
// When state is cacheBuilt, seq equals the sorted set bits exactly.
type orderCache struct {
	state cacheState
	seq   []uint

	rebuilds      uint64
	invalidations uint64
}

// invalidate drops the cached sequence. The backing array is kept for
// the next rebuild.
func (c *orderCache) invalidate() {
	if c.state == cacheBuilt {
		c.state = cacheDirty
		c.seq = c.seq[:0]
		c.invalidations++
	}
}

// CacheStats describes the ordered cache of a SparseSet.
type CacheStats struct {
	// Built reports whether the cache currently holds the member sequence.
	Built bool
	// Rebuilds counts how often the sequence was materialized.
	Rebuilds uint64
	// Invalidations counts how often a built sequence was discarded.
	Invalidations uint64
}

// SparseSet is a packed bitmap, like BoundedSet, plus an ascending member
// cache that ordered traversal builds on demand and every mutation drops.
//
// Repeated iteration between mutation bursts is served from the cache:
// after the first rebuild, Begin, All, Backward, LowerBound and UpperBound
// cost no bitmap scan. Reads that rebuild the cache mutate the set, so a
// SparseSet shared across goroutines needs external locking even for
// iteration.
type SparseSet struct {
	words    []uint64
	capacity uint
	cache    orderCache
	log      *Logger
}

// NewSparseSet creates an empty set over [0, capacity).
func NewSparseSet(capacity uint, opts ...Option) *SparseSet {
	o := applyOptions(opts)
	return &SparseSet{
		words:    make([]uint64, bitops.WordsFor(capacity)),
		capacity: capacity,
		log:      o.logger.WithKind("sparse"),
	}
}

// Insert adds key and reports whether it was absent. The cache is
// invalidated unconditionally. key must be below Size().
func (s *SparseSet) Insert(key uint) bool {
	w := &s.words[key>>bitops.WordShift]
	old := *w
	*w |= uint64(1) << (key & bitops.WordMask)
	s.cache.invalidate()
	return old != *w
}

// Erase removes key. The cache is invalidated even if key was absent.
// key must be below Size().
func (s *SparseSet) Erase(key uint) {
	s.words[key>>bitops.WordShift] &^= uint64(1) << (key & bitops.WordMask)
	s.cache.invalidate()
}

// Test reports whether key is a member. It never touches the cache.
// key must be below Size().
func (s *SparseSet) Test(key uint) bool {
	return s.words[key>>bitops.WordShift]>>(key&bitops.WordMask)&1 != 0
}

// InsertChecked is Insert, returning a *RangeError for keys outside the universe.
func (s *SparseSet) InsertChecked(key uint) (bool, error) {
	if err := checkKey(key, s.capacity); err != nil {
		return false, err
	}
	return s.Insert(key), nil
}

// EraseChecked is Erase, returning a *RangeError for keys outside the universe.
func (s *SparseSet) EraseChecked(key uint) error {
	if err := checkKey(key, s.capacity); err != nil {
		return err
	}
	s.Erase(key)
	return nil
}

// TestChecked is Test, returning a *RangeError for keys outside the universe.
func (s *SparseSet) TestChecked(key uint) (bool, error) {
	if err := checkKey(key, s.capacity); err != nil {
		return false, err
	}
	return s.Test(key), nil
}

// Count returns the number of members: O(1) from a built cache, otherwise
// a popcount over the bitmap that leaves the cache untouched.
func (s *SparseSet) Count() int {
	if s.cache.state == cacheBuilt {
		return len(s.cache.seq)
	}
	return bitops.PopcountWords(s.words)
}

// Empty reports whether the set has no members.
func (s *SparseSet) Empty() bool {
	if s.cache.state == cacheBuilt {
		return len(s.cache.seq) == 0
	}
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Clear removes every member.
func (s *SparseSet) Clear() {
	clear(s.words)
	s.cache.invalidate()
}

// Size returns the capacity of the universe.
func (s *SparseSet) Size() uint {
	return s.capacity
}

// Resize reallocates the bitmap for [0, capacity). All members are
// discarded and the cache storage is released.
func (s *SparseSet) Resize(capacity uint) {
	old := s.capacity
	s.cache.invalidate()
	s.cache.seq = nil
	s.words = make([]uint64, bitops.WordsFor(capacity))
	s.capacity = capacity

	if s.log != nil {
		s.log.LogResize(context.Background(), old, capacity, 0)
	}
}

// Swap exchanges the contents of s and other, caches included.
func (s *SparseSet) Swap(other *SparseSet) {
	s.words, other.words = other.words, s.words
	s.capacity, other.capacity = other.capacity, s.capacity
	s.cache, other.cache = other.cache, s.cache
}

// CacheStats returns a snapshot of the ordered cache state.
func (s *SparseSet) CacheStats() CacheStats {
	return CacheStats{
		Built:         s.cache.state == cacheBuilt,
		Rebuilds:      s.cache.rebuilds,
		Invalidations: s.cache.invalidations,
	}
}

// Values returns the members in ascending order, building the cache if
// needed. The slice aliases the cache, is valid until the next mutation
// and must not be modified.
func (s *SparseSet) Values() []uint {
	return s.ordered()
}

// Begin returns a cursor on the smallest member, building the cache if needed.
func (s *SparseSet) Begin() SeqIterator {
	return seqAt(s.ordered(), 0)
}

// End returns the end sentinel, building the cache if needed.
func (s *SparseSet) End() SeqIterator {
	seq := s.ordered()
	return seqAt(seq, len(seq))
}

// All yields the members in ascending order from the cache.
func (s *SparseSet) All() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for _, key := range s.ordered() {
			if !yield(key) {
				return
			}
		}
	}
}

// Backward yields the members in descending order from the cache.
func (s *SparseSet) Backward() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		seq := s.ordered()
		for i := len(seq) - 1; i >= 0; i-- {
			if !yield(seq[i]) {
				return
			}
		}
	}
}

// LowerBound returns a cursor on the first member >= key. Like Begin, it
// builds the cache first if a mutation dropped it.
func (s *SparseSet) LowerBound(key uint) SeqIterator {
	seq := s.ordered()
	return seqAt(seq, sort.Search(len(seq), func(i int) bool { return seq[i] >= key }))
}

// UpperBound returns a cursor on the first member > key, building the cache
// first if needed.
func (s *SparseSet) UpperBound(key uint) SeqIterator {
	seq := s.ordered()
	return seqAt(seq, sort.Search(len(seq), func(i int) bool { return seq[i] > key }))
}

// ordered returns the cached ascending sequence, rebuilding it when dirty.
func (s *SparseSet) ordered() []uint {
	if s.cache.state == cacheBuilt {
		return s.cache.seq
	}

	seq := s.cache.seq[:0]
	if n := bitops.PopcountWords(s.words); cap(seq) < n {
		seq = make([]uint, 0, n)
	}
	for slot, w := range s.words {
		base := uint(slot) << bitops.WordShift
		for w != 0 {
			seq = append(seq, base+uint(bitops.Lsb(w)))
			w &= w - 1
		}
	}

	s.cache.seq = seq
	s.cache.state = cacheBuilt
	s.cache.rebuilds++

	if s.log != nil {
		s.log.LogCacheRebuild(context.Background(), len(seq), s.cache.rebuilds)
	}
	return seq
}
