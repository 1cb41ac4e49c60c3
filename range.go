//go:build rangequery

package sortedlist

import (
	"github.com/iotaledger/hive.go/ds/types"
	"github.com/iotaledger/hive.go/ierrors"
)

// Range returns an Iterator over the entries whose keys lie between the given Bounds.
func (s *SortedList[K, V]) Range(lower Bound[K], upper Bound[K]) *Iterator[K, V] {
	start, end := s.rangeIndices(lower, upper)

	return newIterator(s.keys, s.values, start, end)
}

// ForEachInRange calls the consumer function for every entry whose key lies between the given Bounds.
// The iteration can be aborted by returning false in the consumer.
func (s *SortedList[K, V]) ForEachInRange(lower Bound[K], upper Bound[K], consumer func(key K, value V) bool) bool {
	for it := s.Range(lower, upper); it.HasNext(); {
		if !consumer(it.Next()) {
			return false
		}
	}

	return true
}

// RangeClosed returns the entries with lowerKey <= key <= upperKey.
func (s *SortedList[K, V]) RangeClosed(lowerKey K, upperKey K) []*types.Tuple[K, V] {
	entries := make([]*types.Tuple[K, V], 0)
	s.ForEachInRange(Included(lowerKey), Included(upperKey), func(key K, value V) bool {
		entries = append(entries, types.NewTuple(key, value))

		return true
	})

	return entries
}

// rangeIndices translates the given Bounds into the half-open index range [start, end).
func (s *SortedList[K, V]) rangeIndices(lower Bound[K], upper Bound[K]) (start int, end int) {
	switch lower.boundType {
	case BoundTypeUnbounded:
		start = 0
	case BoundTypeIncluded:
		start = s.LowerBound(lower.key)
	case BoundTypeExcluded:
		start = s.UpperBound(lower.key)
	default:
		panic(ierrors.Wrapf(ErrUnsupportedBoundType, "lower bound %s", lower.boundType))
	}

	switch upper.boundType {
	case BoundTypeUnbounded:
		end = len(s.keys)
	case BoundTypeIncluded:
		end = s.UpperBound(upper.key)
	case BoundTypeExcluded:
		end = s.LowerBound(upper.key)
	default:
		panic(ierrors.Wrapf(ErrUnsupportedBoundType, "upper bound %s", upper.boundType))
	}

	return start, max(start, end)
}
