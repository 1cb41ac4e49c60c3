package sortedlist

import "github.com/iotaledger/hive.go/lo"

// Iterator walks through a window of a SortedList in both directions.
//
// The window is fixed when the Iterator is created. Inserting into the list while an Iterator is in use is not
// supported, the Iterator might return shifted entries afterwards.
type Iterator[K any, V any] struct {
	keys   []K
	values []V
	offset int

	// cursor is the amount of entries of the window that lie before the current position.
	cursor int
	last   int
	state  IteratorState
}

// newIterator creates an Iterator over the entries [start, end) of the given parallel slices.
func newIterator[K any, V any](keys []K, values []V, start int, end int) *Iterator[K, V] {
	return &Iterator[K, V]{
		keys:   keys[start:end:end],
		values: values[start:end:end],
		offset: start,
		last:   -1,
	}
}

// State returns the current IteratorState that the Iterator is in.
func (i *Iterator[K, V]) State() IteratorState {
	return i.state
}

// HasNext returns true if there is another entry that can be requested via Next.
func (i *Iterator[K, V]) HasNext() bool {
	return i.cursor < len(i.keys)
}

// HasPrev returns true if there is another entry that can be requested via Prev.
func (i *Iterator[K, V]) HasPrev() bool {
	return i.cursor > 0
}

// Next returns the next entry and advances the Iterator. The method panics if there is no next entry (always use
// HasNext to check if another entry can be requested).
func (i *Iterator[K, V]) Next() (key K, value V) {
	if !i.HasNext() {
		panic("no next entry found in iterator")
	}

	i.last = i.cursor
	i.cursor++
	i.state = lo.Cond(i.cursor == len(i.keys), RightEndReachedState, IterationStartedState)

	return i.keys[i.last], i.values[i.last]
}

// Prev returns the previous entry and moves the Iterator back. The method panics if there is no previous entry
// (always use HasPrev to check if another entry can be requested).
func (i *Iterator[K, V]) Prev() (key K, value V) {
	if !i.HasPrev() {
		panic("no previous entry found in iterator")
	}

	i.cursor--
	i.last = i.cursor
	i.state = lo.Cond(i.cursor == 0, LeftEndReachedState, IterationStartedState)

	return i.keys[i.last], i.values[i.last]
}

// Index returns the position in the SortedList of the entry that was returned last (or -1 if there was none).
func (i *Iterator[K, V]) Index() int {
	if i.last == -1 {
		return -1
	}

	return i.offset + i.last
}

// Len returns the amount of entries in the window of the Iterator.
func (i *Iterator[K, V]) Len() int {
	return len(i.keys)
}

// Reset moves the Iterator back to the start of its window.
func (i *Iterator[K, V]) Reset() {
	i.cursor = 0
	i.last = -1
	i.state = InitialState
}

// region IteratorState ////////////////////////////////////////////////////////////////////////////////////////////////

// IteratorState represents the position of an Iterator relative to the ends of its window.
type IteratorState int

const (
	// InitialState is the state of the Iterator before the first entry has been retrieved.
	InitialState IteratorState = iota

	// IterationStartedState is the state of the Iterator after an entry has been retrieved that is not at either end
	// of the window.
	IterationStartedState

	// LeftEndReachedState is the state of the Iterator after Prev returned the first entry of the window.
	LeftEndReachedState

	// RightEndReachedState is the state of the Iterator after Next returned the last entry of the window.
	RightEndReachedState
)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
