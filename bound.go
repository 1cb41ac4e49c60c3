//go:build rangequery

package sortedlist

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrUnsupportedBoundType is used to panic if a range query is started with a Bound of an unknown BoundType.
var ErrUnsupportedBoundType = ierrors.New("unsupported BoundType")

// BoundType indicates whether the key of a Bound is part of a range ("included"), is not part of it ("excluded") or
// whether the range does not end on that side at all ("unbounded").
type BoundType uint8

const (
	// BoundTypeUnbounded indicates that the range extends to the end of the list on this side.
	BoundTypeUnbounded BoundType = iota

	// BoundTypeIncluded indicates that entries with the key of the Bound are part of the range.
	BoundTypeIncluded

	// BoundTypeExcluded indicates that entries with the key of the Bound are not part of the range.
	BoundTypeExcluded
)

// BoundTypeNames contains a dictionary of the names of BoundTypes.
var BoundTypeNames = [...]string{
	"BoundTypeUnbounded",
	"BoundTypeIncluded",
	"BoundTypeExcluded",
}

// String returns a human-readable version of the BoundType.
func (b BoundType) String() string {
	if int(b) >= len(BoundTypeNames) {
		return fmt.Sprintf("BoundType(%X)", uint8(b))
	}

	return BoundTypeNames[b]
}

// Bound is one end of a range query. Its zero value is unbounded.
type Bound[K any] struct {
	key       K
	boundType BoundType
}

// Included returns a Bound that includes the entries with the given key.
func Included[K any](key K) Bound[K] {
	return Bound[K]{key: key, boundType: BoundTypeIncluded}
}

// Excluded returns a Bound that excludes the entries with the given key.
func Excluded[K any](key K) Bound[K] {
	return Bound[K]{key: key, boundType: BoundTypeExcluded}
}

// Unbounded returns a Bound that does not limit the range.
func Unbounded[K any]() Bound[K] {
	return Bound[K]{}
}

// Key returns the key of the Bound (the zero value for unbounded Bounds).
func (b Bound[K]) Key() K {
	return b.key
}

// BoundType returns the BoundType of the Bound.
func (b Bound[K]) BoundType() BoundType {
	return b.boundType
}

// String returns a human-readable version of the Bound.
func (b Bound[K]) String() string {
	if b.boundType == BoundTypeUnbounded {
		return b.boundType.String()
	}

	return fmt.Sprintf("%s(%v)", b.boundType, b.key)
}
