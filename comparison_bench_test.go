package intset

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/intset/testutil"
)

// Comparative benchmarks: the three sets vs Roaring and bits-and-blooms/bitset
// Run with: go test -bench=Comparison -benchmem .

const benchCapacity = 1 << 16

func benchKeys() []uint {
	return testutil.NewRNG(0x11111111).Keys(benchCapacity/4, benchCapacity)
}

// ==============================================================================
// Sieve of Eratosthenes
// ==============================================================================

func BenchmarkComparison_Sieve(b *testing.B) {
	const n = 100000
	for _, f := range factories() {
		b.Run(f.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = sieve(f.new(n+1), n)
			}
		})
	}

	b.Run("Roaring", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			rb := roaring.New()
			rb.Add(2)
			for k := uint32(3); k <= n; k += 2 {
				rb.Add(k)
			}
			for k := uint32(3); k*k <= n; k += 2 {
				if rb.Contains(k) {
					for j := k + k; j <= n; j += k {
						rb.Remove(j)
					}
				}
			}
			_ = rb.GetCardinality()
		}
	})

	b.Run("Bitset", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			bs := bitset.New(n + 1)
			bs.Set(2)
			for k := uint(3); k <= n; k += 2 {
				bs.Set(k)
			}
			for k := uint(3); k*k <= n; k += 2 {
				if bs.Test(k) {
					for j := k + k; j <= n; j += k {
						bs.Clear(j)
					}
				}
			}
			_ = bs.Count()
		}
	})
}

// ==============================================================================
// Repeated iteration over an unchanged membership
// ==============================================================================

func BenchmarkComparison_RepeatedIteration(b *testing.B) {
	keys := benchKeys()
	for _, f := range factories() {
		s := f.new(benchCapacity)
		for _, k := range keys {
			s.Insert(k)
		}
		b.Run(f.name, func(b *testing.B) {
			b.ReportAllocs()
			var sum uint
			for i := 0; i < b.N; i++ {
				for k := range s.All() {
					sum += k
				}
			}
			_ = sum
		})
	}

	rb := roaring.New()
	for _, k := range keys {
		rb.Add(uint32(k))
	}
	b.Run("Roaring", func(b *testing.B) {
		b.ReportAllocs()
		var sum uint32
		for i := 0; i < b.N; i++ {
			it := rb.Iterator()
			for it.HasNext() {
				sum += it.Next()
			}
		}
		_ = sum
	})

	bs := bitset.New(benchCapacity)
	for _, k := range keys {
		bs.Set(k)
	}
	b.Run("Bitset", func(b *testing.B) {
		b.ReportAllocs()
		var sum uint
		for i := 0; i < b.N; i++ {
			for k, ok := bs.NextSet(0); ok; k, ok = bs.NextSet(k + 1) {
				sum += k
			}
		}
		_ = sum
	})
}

// ==============================================================================
// Mutation then single iteration (worst case for SparseSet's cache)
// ==============================================================================

func BenchmarkComparison_MutateThenIterate(b *testing.B) {
	keys := benchKeys()
	for _, f := range factories() {
		s := f.new(benchCapacity)
		for _, k := range keys {
			s.Insert(k)
		}
		b.Run(f.name, func(b *testing.B) {
			b.ReportAllocs()
			var sum uint
			for i := 0; i < b.N; i++ {
				k := keys[i%len(keys)]
				s.Erase(k)
				s.Insert(k)
				for v := range s.All() {
					sum += v
				}
			}
			_ = sum
		})
	}
}

// ==============================================================================
// Random insert / test / erase
// ==============================================================================

func BenchmarkComparison_RandomOps(b *testing.B) {
	keys := benchKeys()
	for _, f := range factories() {
		s := f.new(benchCapacity)
		b.Run(f.name, func(b *testing.B) {
			b.ReportAllocs()
			hits := 0
			for i := 0; i < b.N; i++ {
				k := keys[i%len(keys)]
				s.Insert(k)
				if s.Test(keys[(i*7)%len(keys)]) {
					hits++
				}
				s.Erase(keys[(i*13)%len(keys)])
			}
			_ = hits
		})
	}

	rb := roaring.New()
	b.Run("Roaring", func(b *testing.B) {
		b.ReportAllocs()
		hits := 0
		for i := 0; i < b.N; i++ {
			rb.Add(uint32(keys[i%len(keys)]))
			if rb.Contains(uint32(keys[(i*7)%len(keys)])) {
				hits++
			}
			rb.Remove(uint32(keys[(i*13)%len(keys)]))
		}
		_ = hits
	})
}
