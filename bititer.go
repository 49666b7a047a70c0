package intset

import "github.com/hupe1980/intset/internal/bitops"

// endSlot is the word index of the end sentinel.
const endSlot = -1

// BitIterator is a forward cursor over a packed bitmap.
//
// It borrows the bitmap it was created from; any mutation of that set
// invalidates it. Two cursors are equal iff they sit on the same
// (word index, bit offset); all end sentinels are equal.
type BitIterator struct {
	words    []uint64
	capacity uint
	slot     int
	bit      uint
	rest     uint64 // bits of words[slot] at offsets >= bit
}

// Valid reports whether the cursor is on a member (not End).
func (it BitIterator) Valid() bool {
	return it.slot != endSlot
}

// Value returns the member under the cursor. It must not be called on End.
func (it BitIterator) Value() uint {
	return uint(it.slot)<<bitops.WordShift + it.bit
}

// Next advances to the next member, or to End. Next on End is a no-op.
func (it *BitIterator) Next() {
	if it.slot == endSlot {
		return
	}
	it.rest &= it.rest - 1
	it.settle()
}

// Equal reports whether it and other sit on the same position.
func (it BitIterator) Equal(other BitIterator) bool {
	return it.slot == other.slot && it.bit == other.bit
}

// settle moves onto the lowest bit of rest, skipping zero words.
func (it *BitIterator) settle() {
	for it.rest == 0 {
		it.slot++
		if it.slot >= len(it.words) {
			it.toEnd()
			return
		}
		it.rest = it.words[it.slot]
	}
	it.bit = uint(bitops.Lsb(it.rest))
	if it.Value() >= it.capacity {
		it.toEnd()
	}
}

func (it *BitIterator) toEnd() {
	it.slot = endSlot
	it.bit = 0
	it.rest = 0
	it.words = nil
	it.capacity = 0
}
