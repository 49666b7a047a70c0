// Package testutil provides testing utilities for intset.
//
// This package is intended for use in tests, benchmarks and the example
// drivers. It provides a seedable RNG for reproducible key streams and a
// reference set backed by bits-and-blooms/bitset to check results against.
//
// # Random Keys
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.Keys(1000, capacity)      // keys in [0, capacity)
//	ops := rng.Ops(5000, capacity, 0.7)   // 70% inserts, 30% erases
//
// # Reference Results
//
//	ref := testutil.NewReference(capacity)
//	ref.Apply(ops)
//	want := ref.Keys() // ascending
package testutil
