// Package arena provides a fixed-capacity slot arena addressed by stable
// integer references.
//
// The arena never reallocates its backing storage after construction, so a
// Ref handed out by Append stays meaningful until the slot is popped or the
// arena is reset. This replaces pointer back-references into a growable
// slice, which would dangle after a reallocation.
//
// # Safety
//
// Append returns ErrArenaFull instead of growing. Ref 0 is reserved as the
// null reference, so a zeroed []Ref table means "nothing referenced".
package arena
