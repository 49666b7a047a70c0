package testutil

import (
	"math/rand"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Key returns a pseudo-random key in [0, capacity).
// capacity must be positive.
func (r *RNG) Key(capacity uint) uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint(r.rand.Uint64() % uint64(capacity))
}

// Keys returns n pseudo-random keys in [0, capacity), duplicates allowed.
// Locks only once per call (preferred over calling Key in a loop).
func (r *RNG) Keys(n int, capacity uint) []uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]uint, n)
	for i := range keys {
		keys[i] = uint(r.rand.Uint64() % uint64(capacity))
	}
	return keys
}

// OpKind is the kind of a generated set mutation.
type OpKind uint8

const (
	// OpInsert inserts Op.Key.
	OpInsert OpKind = iota
	// OpErase erases Op.Key.
	OpErase
	// OpClear removes every member.
	OpClear
)

// Op is a single generated set mutation.
type Op struct {
	Kind OpKind
	Key  uint
}

// Ops returns n pseudo-random mutations over [0, capacity).
// insertRatio is the probability of an insert; the remainder are erases,
// with roughly one clear per thousand operations.
func (r *RNG) Ops(n int, capacity uint, insertRatio float64) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	ops := make([]Op, n)
	for i := range ops {
		key := uint(r.rand.Uint64() % uint64(capacity))
		switch p := r.rand.Float64(); {
		case p < 0.001:
			ops[i] = Op{Kind: OpClear}
		case p < insertRatio:
			ops[i] = Op{Kind: OpInsert, Key: key}
		default:
			ops[i] = Op{Kind: OpErase, Key: key}
		}
	}
	return ops
}

// Reference is a straightforward bounded set used as ground truth.
type Reference struct {
	bs       *bitset.BitSet
	capacity uint
}

// NewReference creates an empty reference set over [0, capacity).
func NewReference(capacity uint) *Reference {
	return &Reference{
		bs:       bitset.New(capacity),
		capacity: capacity,
	}
}

// Insert adds key and reports whether it was absent.
func (r *Reference) Insert(key uint) bool {
	if r.bs.Test(key) {
		return false
	}
	r.bs.Set(key)
	return true
}

// Erase removes key.
func (r *Reference) Erase(key uint) {
	r.bs.Clear(key)
}

// Test reports whether key is a member.
func (r *Reference) Test(key uint) bool {
	return r.bs.Test(key)
}

// Count returns the number of members.
func (r *Reference) Count() int {
	return int(r.bs.Count())
}

// Clear removes every member.
func (r *Reference) Clear() {
	r.bs.ClearAll()
}

// Apply replays ops against the reference.
func (r *Reference) Apply(ops []Op) {
	for _, op := range ops {
		switch op.Kind {
		case OpInsert:
			r.Insert(op.Key)
		case OpErase:
			r.Erase(op.Key)
		case OpClear:
			r.Clear()
		}
	}
}

// Keys returns the members in ascending order.
func (r *Reference) Keys() []uint {
	keys := make([]uint, 0, r.bs.Count())
	for i, ok := r.bs.NextSet(0); ok; i, ok = r.bs.NextSet(i + 1) {
		keys = append(keys, i)
	}
	return keys
}

// Primes returns the number of primes <= n, counted by trial division.
func Primes(n uint) int {
	count := 0
	for i := uint(2); i <= n; i++ {
		prime := true
		for d := uint(2); d*d <= i; d++ {
			if i%d == 0 {
				prime = false
				break
			}
		}
		if prime {
			count++
		}
	}
	return count
}
