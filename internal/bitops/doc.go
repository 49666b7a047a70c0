// Package bitops provides the bit-scan and population-count primitives shared by
// the bitmap-backed sets.
//
// # Kernels
//
//   - Native: math/bits intrinsics (TZCNT/BSF, LZCNT/BSR, POPCNT on x86-64;
//     RBIT+CLZ and CNT on ARM64)
//   - Table: halving search plus a 4-bit lookup table, for targets without
//     hardware bit-scan
//
// Runtime CPU feature detection selects the kernel. Build with -tags noasm to
// force the table kernel, or set INTSET_BITS=native|table to override the
// selection. Both kernels return bit-identical results for every input.
package bitops
