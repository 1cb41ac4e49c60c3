// Package sortedlist provides a SortedList, a multimap that keeps its entries ordered by key and the values of equal
// keys in the order they were inserted in.
package sortedlist

import (
	"slices"
	"sort"
	"strings"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ds/types"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
)

// SortedList stores (K, V) tuples ordered by K and, for equal keys, in the order of insertion.
//
// The entries are kept in two parallel slices. Lookups are binary searches and appending in key order is cheap, while
// inserting in front of existing entries has to shift all of them (reverse insertion order is the worst case).
// Entries can not be removed.
//
// A SortedList is not safe for concurrent use.
type SortedList[K any, V any] struct {
	keys    []K
	values  []V
	compare func(a, b K) int
	logger  log.Logger
}

// New returns a SortedList for keys that support the ordering operators.
func New[K constraints.Ordered, V any](opts ...options.Option[Options]) *SortedList[K, V] {
	return newSortedList[K, V](lo.Comparator[K], opts)
}

// NewComparable returns a SortedList for keys that define their own order via a Compare method.
func NewComparable[K constraints.Comparable[K], V any](opts ...options.Option[Options]) *SortedList[K, V] {
	return newSortedList[K, V](func(a, b K) int {
		return a.Compare(b)
	}, opts)
}

// NewWithComparator returns a SortedList that orders its keys with the given comparator. The comparator has to return
// a negative number if a < b, zero if a == b and a positive number if a > b, and it has to define a total order.
// Lookups on a list with an inconsistent comparator return undefined results.
func NewWithComparator[K any, V any](compare func(a, b K) int, opts ...options.Option[Options]) *SortedList[K, V] {
	if compare == nil {
		panic(ErrNilComparator)
	}

	return newSortedList[K, V](compare, opts)
}

func newSortedList[K any, V any](compare func(a, b K) int, opts []options.Option[Options]) *SortedList[K, V] {
	listOptions := newOptions(opts)

	return &SortedList[K, V]{
		keys:    make([]K, 0, listOptions.Capacity),
		values:  make([]V, 0, listOptions.Capacity),
		compare: compare,
		logger:  listOptions.Logger,
	}
}

// Insert adds the given tuple behind all entries with a key <= the given key and returns the index it was stored at.
// The entries previously stored at an index >= the returned one move up by one.
func (s *SortedList[K, V]) Insert(key K, value V) (index int) {
	if index = len(s.keys); index == 0 || s.compare(key, s.keys[index-1]) >= 0 {
		s.keys = append(s.keys, key)
		s.values = append(s.values, value)

		return index
	}

	index = s.UpperBound(key)
	s.logger.LogTrace("inserting in front of existing entries", "index", index, "shifted", len(s.keys)-index)

	s.keys = slices.Insert(s.keys, index, key)
	s.values = slices.Insert(s.values, index, value)

	return index
}

// Extend inserts all given tuples. The batch is sorted by key first, tuples with equal keys keep their relative order.
func (s *SortedList[K, V]) Extend(entries ...*types.Tuple[K, V]) {
	sortedEntries := slices.Clone(entries)
	slices.SortStableFunc(sortedEntries, func(a, b *types.Tuple[K, V]) int {
		return s.compare(a.A, b.A)
	})

	s.Reserve(len(sortedEntries))
	for _, entry := range sortedEntries {
		s.Insert(entry.A, entry.B)
	}
}

// LowerBound returns the index of the first entry whose key is >= the given key (or Size() if there is none).
func (s *SortedList[K, V]) LowerBound(key K) int {
	return sort.Search(len(s.keys), func(i int) bool {
		return s.compare(s.keys[i], key) >= 0
	})
}

// UpperBound returns the index of the first entry whose key is > the given key (or Size() if there is none).
func (s *SortedList[K, V]) UpperBound(key K) int {
	return sort.Search(len(s.keys), func(i int) bool {
		return s.compare(s.keys[i], key) > 0
	})
}

// Find returns the half-open index range [start, end) of the entries with the given key and a flag that indicates if
// there are any.
func (s *SortedList[K, V]) Find(key K) (start int, end int, exists bool) {
	start = s.LowerBound(key)
	end = start + sort.Search(len(s.keys)-start, func(i int) bool {
		return s.compare(s.keys[start+i], key) > 0
	})

	return start, end, start != end
}

// Has returns true if an entry with the given key exists.
func (s *SortedList[K, V]) Has(key K) bool {
	index := s.LowerBound(key)

	return index < len(s.keys) && s.compare(s.keys[index], key) == 0
}

// ValuesOf returns the values stored for the given key in the order they were inserted in.
func (s *SortedList[K, V]) ValuesOf(key K) []V {
	start, end, _ := s.Find(key)

	return slices.Clone(s.values[start:end])
}

// At returns the key and the value stored at the given index. It panics if the index is out of bounds.
func (s *SortedList[K, V]) At(index int) (key K, value V) {
	s.checkIndex(index)

	return s.keys[index], s.values[index]
}

// KeyAt returns the key stored at the given index. It panics if the index is out of bounds.
func (s *SortedList[K, V]) KeyAt(index int) K {
	s.checkIndex(index)

	return s.keys[index]
}

// ValueAt returns the value stored at the given index. It panics if the index is out of bounds.
func (s *SortedList[K, V]) ValueAt(index int) V {
	s.checkIndex(index)

	return s.values[index]
}

// Head returns the entry with the smallest key.
func (s *SortedList[K, V]) Head() (key K, value V, exists bool) {
	if exists = len(s.keys) != 0; !exists {
		return
	}

	return s.keys[0], s.values[0], true
}

// Tail returns the entry with the largest key (the most recently inserted one if there are several).
func (s *SortedList[K, V]) Tail() (key K, value V, exists bool) {
	if exists = len(s.keys) != 0; !exists {
		return
	}

	return s.keys[len(s.keys)-1], s.values[len(s.values)-1], true
}

// ForEach iterates through the entries in order and calls the consumer function for every entry.
// The iteration can be aborted by returning false in the consumer.
func (s *SortedList[K, V]) ForEach(consumer func(key K, value V) bool) bool {
	if s == nil {
		return true
	}

	keys, values := s.keys, s.values
	for i := range keys {
		if !consumer(keys[i], values[i]) {
			return false
		}
	}

	return true
}

// ForEachReverse iterates through the entries in reverse order and calls the consumer function for every entry.
// The iteration can be aborted by returning false in the consumer.
func (s *SortedList[K, V]) ForEachReverse(consumer func(key K, value V) bool) bool {
	if s == nil {
		return true
	}

	keys, values := s.keys, s.values
	for i := len(keys) - 1; i >= 0; i-- {
		if !consumer(keys[i], values[i]) {
			return false
		}
	}

	return true
}

// Iterator returns an Iterator over all entries that are stored at the time of the call.
func (s *SortedList[K, V]) Iterator() *Iterator[K, V] {
	if s == nil {
		return newIterator[K, V](nil, nil, 0, 0)
	}

	return newIterator(s.keys, s.values, 0, len(s.keys))
}

// Keys returns a copy of all keys in order (it contains duplicates if a key has several values).
func (s *SortedList[K, V]) Keys() []K {
	return slices.Clone(s.keys)
}

// Values returns a copy of all values in order.
func (s *SortedList[K, V]) Values() []V {
	return slices.Clone(s.values)
}

// Entries returns all entries in order.
func (s *SortedList[K, V]) Entries() []*types.Tuple[K, V] {
	entries := make([]*types.Tuple[K, V], len(s.keys))
	for i := range s.keys {
		entries[i] = types.NewTuple(s.keys[i], s.values[i])
	}

	return entries
}

// Size returns the amount of entries in the list.
func (s *SortedList[K, V]) Size() int {
	if s == nil {
		return 0
	}

	return len(s.keys)
}

// IsEmpty returns true if the list does not contain any entries.
func (s *SortedList[K, V]) IsEmpty() bool {
	return s.Size() == 0
}

// Cap returns the amount of entries the list can hold before its storage has to be reallocated.
func (s *SortedList[K, V]) Cap() int {
	return min(cap(s.keys), cap(s.values))
}

// Reserve makes sure that the given amount of additional entries can be inserted without reallocating the storage.
func (s *SortedList[K, V]) Reserve(additional int) {
	if additional <= 0 || s.Cap()-len(s.keys) >= additional {
		return
	}

	oldCap := s.Cap()
	s.keys = slices.Grow(s.keys, additional)
	s.values = slices.Grow(s.values, additional)

	s.logger.LogTrace("reallocated storage", "oldCap", oldCap, "newCap", s.Cap())
}

// Clone returns a copy of the list that shares the comparator and the logger.
func (s *SortedList[K, V]) Clone() *SortedList[K, V] {
	return &SortedList[K, V]{
		keys:    slices.Clone(s.keys),
		values:  slices.Clone(s.values),
		compare: s.compare,
		logger:  s.logger,
	}
}

// String returns a human-readable version of the list.
func (s *SortedList[K, V]) String() string {
	return "SortedList [" + strings.Join(lo.Map(s.Entries(), (*types.Tuple[K, V]).String), ", ") + "]"
}

func (s *SortedList[K, V]) checkIndex(index int) {
	if index < 0 || index >= len(s.keys) {
		panic(ierrors.Wrapf(ErrIndexOutOfBounds, "index %d with size %d", index, len(s.keys)))
	}
}
