//go:build rangequery

package sortedlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedList_Range(t *testing.T) {
	list := New[uint32, uint8]()
	list.Insert(1, 4)
	list.Insert(0, 0)
	list.Insert(0, 1)
	list.Insert(2, 5)
	list.Insert(0, 2)
	list.Insert(3, 7)
	list.Insert(0, 3)
	list.Insert(2, 6)
	list.Insert(4, 8)
	list.Insert(6, 9)
	list.Insert(6, 10)
	list.Insert(9, 11)

	unbounded := Unbounded[uint32]()

	for _, testCase := range []struct {
		lower    Bound[uint32]
		upper    Bound[uint32]
		expected []uint8
	}{
		{unbounded, Included[uint32](2), []uint8{0, 1, 2, 3, 4, 5, 6}},
		{unbounded, Excluded[uint32](2), []uint8{0, 1, 2, 3, 4}},
		{Included[uint32](0), Excluded[uint32](2), []uint8{0, 1, 2, 3, 4}},
		{Included[uint32](1), Excluded[uint32](2), []uint8{4}},
		{Included[uint32](2), Excluded[uint32](2), nil},
		{Included[uint32](2), Included[uint32](2), []uint8{5, 6}},
		{Included[uint32](2), Excluded[uint32](3), []uint8{5, 6}},
		{Included[uint32](2), Included[uint32](3), []uint8{5, 6, 7}},
		{Included[uint32](2), unbounded, []uint8{5, 6, 7, 8, 9, 10, 11}},
		{Excluded[uint32](1), unbounded, []uint8{5, 6, 7, 8, 9, 10, 11}},
		{Excluded[uint32](0), unbounded, []uint8{4, 5, 6, 7, 8, 9, 10, 11}},
		{Excluded[uint32](4), unbounded, []uint8{9, 10, 11}},
		{Included[uint32](5), unbounded, []uint8{9, 10, 11}},
		{Excluded[uint32](5), unbounded, []uint8{9, 10, 11}},
		{Excluded[uint32](6), unbounded, []uint8{11}},
		{Excluded[uint32](6), Excluded[uint32](7), nil},
		{Excluded[uint32](6), Included[uint32](8), nil},
		{Excluded[uint32](6), Excluded[uint32](9), nil},
		{Excluded[uint32](6), Included[uint32](9), []uint8{11}},
		{Excluded[uint32](7), Included[uint32](9), []uint8{11}},
		{Included[uint32](7), Included[uint32](9), []uint8{11}},
		{Excluded[uint32](8), Included[uint32](9), []uint8{11}},
		{Included[uint32](8), Included[uint32](9), []uint8{11}},
		{Included[uint32](9), Included[uint32](1), nil},
		{unbounded, unbounded, list.Values()},
	} {
		var actual []uint8
		list.ForEachInRange(testCase.lower, testCase.upper, func(_ uint32, value uint8) bool {
			actual = append(actual, value)

			return true
		})

		assert.Equal(t, testCase.expected, actual, "range from %s to %s", testCase.lower, testCase.upper)
	}
}

func TestSortedList_RangeClosed(t *testing.T) {
	list := New[int, string]()
	list.Insert(5, "c")
	list.Insert(1, "a")
	list.Insert(7, "d")
	list.Insert(3, "b")

	entries := list.RangeClosed(2, 6)
	require.Len(t, entries, 2)
	assert.Equal(t, 3, entries[0].A)
	assert.Equal(t, "b", entries[0].B)
	assert.Equal(t, 5, entries[1].A)
	assert.Equal(t, "c", entries[1].B)

	assert.Empty(t, list.RangeClosed(8, 10))
	assert.Empty(t, New[int, string]().RangeClosed(0, 10))
}

func TestSortedList_RangeIterator(t *testing.T) {
	list := New[int, int]()
	for i := 0; i < 10; i++ {
		list.Insert(i, i)
	}

	it := list.Range(Included(3), Excluded(6))
	require.Equal(t, 3, it.Len())

	key, _ := it.Next()
	assert.Equal(t, 3, key)
	assert.Equal(t, 3, it.Index())

	it.Next()
	key, _ = it.Next()
	assert.Equal(t, 5, key)
	assert.Equal(t, 5, it.Index())
	assert.False(t, it.HasNext())

	assert.False(t, list.ForEachInRange(Unbounded[int](), Unbounded[int](), func(int, int) bool { return false }))
	assert.Panics(t, func() { list.Range(Bound[int]{boundType: BoundType(7)}, Unbounded[int]()) })
}

func TestBound_String(t *testing.T) {
	assert.Equal(t, "BoundTypeUnbounded", Unbounded[int]().String())
	assert.Equal(t, "BoundTypeIncluded(5)", Included(5).String())
	assert.Equal(t, "BoundTypeExcluded(a)", Excluded("a").String())
	assert.Equal(t, "BoundType(7)", BoundType(7).String())

	var zero Bound[int]
	assert.Equal(t, BoundTypeUnbounded, zero.BoundType())
	assert.Equal(t, 5, Included(5).Key())
}
