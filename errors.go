package sortedlist

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrIndexOutOfBounds is used to panic if a positional accessor is called with an index outside [0, Size()).
	ErrIndexOutOfBounds = ierrors.New("index out of bounds")

	// ErrNilComparator is used to panic if a SortedList is created without a comparator.
	ErrNilComparator = ierrors.New("comparator must not be nil")
)
