package bitops

// lsbNibble[i] is the lowest set bit of i; entry 0 is never read.
var lsbNibble = [16]int8{0, 0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0}

// msbNibble[i] is the highest set bit of i; entry 0 is never read.
var msbNibble = [16]int8{0, 0, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3}

var nibbleCount = [16]int8{0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4}

func lsbTable(x uint64) int {
	if x == 0 {
		return -1
	}
	r := 0
	if x&0xFFFFFFFF == 0 {
		r += 32
		x >>= 32
	}
	if x&0xFFFF == 0 {
		r += 16
		x >>= 16
	}
	if x&0xFF == 0 {
		r += 8
		x >>= 8
	}
	if x&0xF == 0 {
		r += 4
		x >>= 4
	}
	return r + int(lsbNibble[x&0xF])
}

func msbTable(x uint64) int {
	if x == 0 {
		return -1
	}
	r := 0
	if x>>32 != 0 {
		r += 32
		x >>= 32
	}
	if x>>16 != 0 {
		r += 16
		x >>= 16
	}
	if x>>8 != 0 {
		r += 8
		x >>= 8
	}
	if x>>4 != 0 {
		r += 4
		x >>= 4
	}
	return r + int(msbNibble[x])
}

func popcountTable(x uint64) int {
	count := 0
	for x != 0 {
		count += int(nibbleCount[x&0xF])
		x >>= 4
	}
	return count
}
