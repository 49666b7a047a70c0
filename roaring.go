package intset

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/intset/internal/conv"
)

// ToRoaring copies the members of s into a new roaring bitmap.
// It fails if a member does not fit in uint32.
func ToRoaring(s Set) (*roaring.Bitmap, error) {
	keys := make([]uint32, 0, s.Count())
	for key := range s.All() {
		v, err := conv.UintToUint32(key)
		if err != nil {
			return nil, err
		}
		keys = append(keys, v)
	}
	rb := roaring.New()
	rb.AddMany(keys)
	return rb, nil
}

// InsertRoaring inserts every member of rb into s and returns how many were
// absent before. It returns a *RangeError, leaving s untouched, if rb holds
// a value outside the universe of s.
func InsertRoaring(s Set, rb *roaring.Bitmap) (int, error) {
	if rb.IsEmpty() {
		return 0, nil
	}
	if err := checkKey(uint(rb.Maximum()), s.Size()); err != nil {
		return 0, err
	}

	added := 0
	it := rb.Iterator()
	for it.HasNext() {
		if s.Insert(uint(it.Next())) {
			added++
		}
	}
	return added, nil
}
