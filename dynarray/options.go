package dynarray

import "github.com/hupe1980/dsgo"

type options struct {
	capacity int
	logger   *dsgo.Logger
}

// Option configures DynamicArray construction.
type Option func(*options)

// WithCapacity pre-sizes the storage block so the first len(values) appends
// need no reallocation. Negative values are rejected by New.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger configures structured logging. Growth events are logged at
// debug level. If nil is passed, logging stays disabled.
func WithLogger(l *dsgo.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
