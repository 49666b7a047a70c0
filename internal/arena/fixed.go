package arena

import (
	"errors"
)

var (
	ErrArenaFull = errors.New("arena is full")
)

// Ref addresses a slot in a Fixed arena.
// Slot i is addressed by Ref(i+1); the zero Ref is null.
type Ref uint32

// Nil is the null reference.
const Nil Ref = 0

// IsNil reports whether r is the null reference.
func (r Ref) IsNil() bool { return r == Nil }

// Index returns the zero-based slot index r addresses.
// It must not be called on Nil.
func (r Ref) Index() int { return int(r) - 1 }

// RefAt returns the reference for slot index i.
func RefAt(i int) Ref { return Ref(i + 1) }

// MaxSlots is the largest capacity a Fixed arena can address.
const MaxSlots = 1<<32 - 2

// Fixed is a contiguous arena of T slots with a capacity fixed at
// construction. Slots are used as a stack: Append pushes, Pop removes the
// last slot.
type Fixed[T any] struct {
	buf []T
}

// NewFixed creates an empty arena able to hold capacity slots.
// It panics if capacity exceeds MaxSlots.
func NewFixed[T any](capacity int) *Fixed[T] {
	if capacity < 0 || uint64(capacity) > MaxSlots {
		panic("arena: capacity out of range")
	}
	return &Fixed[T]{
		buf: make([]T, 0, capacity),
	}
}

// Append stores v in the next free slot and returns its reference.
// It returns ErrArenaFull if every slot is in use.
func (a *Fixed[T]) Append(v T) (Ref, error) {
	if len(a.buf) == cap(a.buf) {
		return Nil, ErrArenaFull
	}
	a.buf = append(a.buf, v)
	return RefAt(len(a.buf) - 1), nil
}

// Get returns the value in the slot r addresses.
func (a *Fixed[T]) Get(r Ref) T {
	return a.buf[r.Index()]
}

// Set overwrites the value in the slot r addresses.
func (a *Fixed[T]) Set(r Ref, v T) {
	a.buf[r.Index()] = v
}

// Last returns the reference and value of the last used slot.
// The arena must not be empty.
func (a *Fixed[T]) Last() (Ref, T) {
	i := len(a.buf) - 1
	return RefAt(i), a.buf[i]
}

// Pop releases the last used slot.
func (a *Fixed[T]) Pop() {
	var zero T
	i := len(a.buf) - 1
	a.buf[i] = zero
	a.buf = a.buf[:i]
}

// Len returns the number of used slots.
func (a *Fixed[T]) Len() int {
	return len(a.buf)
}

// Cap returns the fixed slot capacity.
func (a *Fixed[T]) Cap() int {
	return cap(a.buf)
}

// Reset releases every slot without touching the capacity.
func (a *Fixed[T]) Reset() {
	a.buf = a.buf[:0]
}

// Values returns the used slots in slot order.
// The returned slice aliases the arena and is valid until the next mutation;
// callers must not modify it.
func (a *Fixed[T]) Values() []T {
	return a.buf[:len(a.buf):len(a.buf)]
}
