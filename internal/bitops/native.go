package bitops

import "math/bits"

func lsbNative(x uint64) int {
	if x == 0 {
		return -1
	}
	return bits.TrailingZeros64(x)
}

func msbNative(x uint64) int {
	return bits.Len64(x) - 1
}

func popcountNative(x uint64) int {
	return bits.OnesCount64(x)
}
