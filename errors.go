package intset

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every RangeError.
	ErrOutOfRange = errors.New("key out of range")

	// ErrNotAscending is returned by UnorderedSparseSet range queries once
	// the dense order is no longer ascending.
	ErrNotAscending = errors.New("dense order is not ascending")
)

// RangeError reports a key outside the universe [0, Capacity).
//
// It matches ErrOutOfRange via errors.Is.
type RangeError struct {
	Key      uint
	Capacity uint
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("key %d out of range [0, %d)", e.Key, e.Capacity)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// checkKey returns a *RangeError if key is not below capacity.
func checkKey(key, capacity uint) error {
	if key >= capacity {
		return &RangeError{Key: key, Capacity: capacity}
	}
	return nil
}
