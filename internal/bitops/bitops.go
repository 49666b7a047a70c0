package bitops

// WordBits is the width of the words backing the packed bitmaps.
const WordBits = 64

// WordShift is log2(WordBits).
const WordShift = 6

// WordMask extracts the bit offset of a key within its word.
const WordMask = WordBits - 1

// Word is any fixed-width unsigned word the primitives accept.
// Narrower words are zero-extended, which preserves every bit position.
type Word interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Kernel function pointers. The table kernel is the default; the
// platform-specific init functions switch to the native kernel when the
// CPU provides hardware bit-scan and popcount.
var (
	kernelLsb      = lsbTable
	kernelMsb      = msbTable
	kernelPopcount = popcountTable
)

// Lsb returns the index of the lowest set bit of x, or -1 if x is zero.
func Lsb[W Word](x W) int {
	return kernelLsb(uint64(x))
}

// Msb returns the index of the highest set bit of x, or -1 if x is zero.
func Msb[W Word](x W) int {
	return kernelMsb(uint64(x))
}

// Popcount returns the number of set bits in x.
func Popcount[W Word](x W) int {
	return kernelPopcount(uint64(x))
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	count := 0
	// Process 4 words at a time
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += kernelPopcount(words[i])
		count += kernelPopcount(words[i+1])
		count += kernelPopcount(words[i+2])
		count += kernelPopcount(words[i+3])
	}
	for ; i < len(words); i++ {
		count += kernelPopcount(words[i])
	}
	return count
}

// WordsFor returns the number of words needed to hold n bits.
func WordsFor(n uint) int {
	return int((n + WordMask) >> WordShift)
}

// TailMask returns the mask of valid bits in the last word of an n-bit
// bitmap. It is all-ones when n is a multiple of WordBits.
func TailMask(n uint) uint64 {
	if r := n & WordMask; r != 0 {
		return (uint64(1) << r) - 1
	}
	return ^uint64(0)
}

func use(k Kernel) {
	switch k {
	case Native:
		kernelLsb = lsbNative
		kernelMsb = msbNative
		kernelPopcount = popcountNative
	default:
		kernelLsb = lsbTable
		kernelMsb = msbTable
		kernelPopcount = popcountTable
	}
}
