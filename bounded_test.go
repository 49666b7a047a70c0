package intset

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoundedWith(capacity uint, keys ...uint) *BoundedSet {
	s := NewBoundedSet(capacity)
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

func TestBoundedSet_RangeQuery(t *testing.T) {
	s := newBoundedWith(100, 5, 20, 21, 25, 30, 31, 35)

	var got []uint
	for it, last := s.LowerBound(21), s.UpperBound(30); !it.Equal(last); it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []uint{21, 25, 30}, got)

	assert.Equal(t, []uint{21, 25, 30}, slices.Collect(s.Range(s.LowerBound(21), s.UpperBound(30))))
	assert.Equal(t, []uint{20, 21, 25}, slices.Collect(s.Range(s.LowerBound(6), s.LowerBound(26))))
}

func TestBoundedSet_Bounds(t *testing.T) {
	s := newBoundedWith(130, 0, 63, 64, 129)

	tests := []struct {
		name  string
		it    BitIterator
		want  uint
		isEnd bool
	}{
		{"lower_bound on member", s.LowerBound(63), 63, false},
		{"lower_bound between members", s.LowerBound(1), 63, false},
		{"lower_bound across word", s.LowerBound(65), 129, false},
		{"lower_bound past capacity", s.LowerBound(130), 0, true},
		{"upper_bound on member", s.UpperBound(63), 64, false},
		{"upper_bound of last member", s.UpperBound(129), 0, true},
		{"upper_bound at capacity-2", s.UpperBound(128), 129, false},
		{"upper_bound far past capacity", s.UpperBound(^uint(0)), 0, true},
		{"find member", s.Find(64), 64, false},
		{"find absent", s.Find(65), 0, true},
		{"find past capacity", s.Find(500), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.isEnd {
				assert.False(t, tt.it.Valid())
				assert.True(t, tt.it.Equal(s.End()))
				return
			}
			require.True(t, tt.it.Valid())
			assert.Equal(t, tt.want, tt.it.Value())
		})
	}
}

func TestBoundedSet_CursorEquality(t *testing.T) {
	s := newBoundedWith(200, 3, 70, 150)

	assert.True(t, s.End().Equal(s.End()))
	assert.True(t, s.Begin().Equal(s.Find(3)))
	assert.False(t, s.Begin().Equal(s.End()))

	it := s.Begin()
	it.Next()
	assert.True(t, it.Equal(s.Find(70)))
	it.Next()
	it.Next()
	assert.True(t, it.Equal(s.End()))

	// Next on End stays at End.
	it.Next()
	assert.True(t, it.Equal(s.End()))

	empty := NewBoundedSet(200)
	assert.True(t, empty.Begin().Equal(empty.End()))
	assert.True(t, empty.Begin().Equal(s.End()))
}

func TestBoundedSet_ScanAcrossZeroWords(t *testing.T) {
	s := newBoundedWith(64*10+7, 1, 64*9+5, 64*10+6)

	assert.Equal(t, []uint{1, 64*9 + 5, 64*10 + 6}, s.AppendTo(nil))
	assert.Equal(t, []uint{64*10 + 6, 64*9 + 5, 1}, slices.Collect(s.Backward()))
}

func TestBoundedSet_FullWords(t *testing.T) {
	s := NewBoundedSet(128)
	for k := uint(0); k < 128; k++ {
		s.Insert(k)
	}
	assert.Equal(t, 128, s.Count())

	got := slices.Collect(s.All())
	require.Len(t, got, 128)
	for i, k := range got {
		assert.Equal(t, uint(i), k)
	}
}

func TestBoundedSet_EraseAt(t *testing.T) {
	s := newBoundedWith(100, 10, 20, 30)

	s.EraseAt(s.Find(20))
	assert.False(t, s.Test(20))
	assert.Equal(t, 2, s.Count())

	s.EraseAt(s.End())
	assert.Equal(t, 2, s.Count())
}

func TestBoundedSet_ResizeKeepsLowBits(t *testing.T) {
	s := newBoundedWith(200, 1, 64, 100, 150, 199)

	s.Resize(101)
	assert.Equal(t, uint(101), s.Size())
	assert.Equal(t, []uint{1, 64, 100}, s.AppendTo(nil))
	assert.Equal(t, 3, s.Count())

	// Growing again must not resurrect the dropped members.
	s.Resize(300)
	assert.Equal(t, []uint{1, 64, 100}, s.AppendTo(nil))
	assert.False(t, s.Test(150))
	assert.False(t, s.Test(199))

	s.Resize(0)
	assert.True(t, s.Empty())
	assert.True(t, s.Begin().Equal(s.End()))
}

func TestBoundedSet_Swap(t *testing.T) {
	a := newBoundedWith(10, 1, 2)
	b := newBoundedWith(300, 299)

	a.Swap(b)
	assert.Equal(t, uint(300), a.Size())
	assert.Equal(t, []uint{299}, a.AppendTo(nil))
	assert.Equal(t, uint(10), b.Size())
	assert.Equal(t, []uint{1, 2}, b.AppendTo(nil))
}

func TestBoundedSet_LogsResize(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := NewBoundedSet(10, WithLogger(logger))
	s.Insert(3)
	s.Resize(20)

	out := buf.String()
	assert.Contains(t, out, "set resized")
	assert.Contains(t, out, "kind=bounded")
	assert.Contains(t, out, "from=10")
	assert.Contains(t, out, "to=20")
	assert.Contains(t, out, "kept=1")
}
