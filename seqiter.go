package intset

// SeqIterator is a cursor over a materialized member sequence: the dense
// array of an UnorderedSparseSet or the ordered cache of a SparseSet.
//
// It borrows the sequence; any mutation of the owning set invalidates it.
// Cursors compare equal iff they sit on the same position.
type SeqIterator struct {
	seq []uint
	pos int
}

func seqAt(seq []uint, pos int) SeqIterator {
	return SeqIterator{seq: seq, pos: pos}
}

// Valid reports whether the cursor is on a member (not End).
func (it SeqIterator) Valid() bool {
	return it.pos >= 0 && it.pos < len(it.seq)
}

// Value returns the member under the cursor. It must not be called on End.
func (it SeqIterator) Value() uint {
	return it.seq[it.pos]
}

// Index returns the position of the cursor within the sequence.
func (it SeqIterator) Index() int {
	return it.pos
}

// Next advances the cursor. Next on End is a no-op.
func (it *SeqIterator) Next() {
	if it.pos < len(it.seq) {
		it.pos++
	}
}

// Equal reports whether it and other sit on the same position.
func (it SeqIterator) Equal(other SeqIterator) bool {
	return it.pos == other.pos
}
