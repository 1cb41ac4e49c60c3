package sortedlist

import (
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
)

// Options contains the configuration options for a SortedList.
type Options struct {
	// Capacity is the amount of entries the list can hold before its storage has to be reallocated.
	Capacity int

	// Logger receives trace messages about the expensive code paths of the list.
	Logger log.Logger
}

// WithCapacity is an option to pre-size the storage of a SortedList. It is a hint and not a limit, negative values
// are treated as zero.
func WithCapacity(capacity int) options.Option[Options] {
	return func(opts *Options) {
		opts.Capacity = max(capacity, 0)
	}
}

// WithLogger is an option to set the Logger of a SortedList.
func WithLogger(logger log.Logger) options.Option[Options] {
	return func(opts *Options) {
		if logger == nil {
			logger = log.EmptyLogger
		}

		opts.Logger = logger
	}
}

// newOptions returns the Options that result from applying the given options to the defaults.
func newOptions(opts []options.Option[Options]) *Options {
	return options.Apply(&Options{
		Logger: log.EmptyLogger,
	}, opts)
}
