package bitvector

import "github.com/hupe1980/dsgo"

type options struct {
	wordCapacity int
	logger       *dsgo.Logger
}

// Option configures BitVector construction.
type Option func(*options)

// WithWordCapacity pre-sizes the underlying word array. Negative values are
// rejected by the constructors.
func WithWordCapacity(n int) Option {
	return func(o *options) {
		o.wordCapacity = n
	}
}

// WithLogger configures structured logging for the underlying word array.
// If nil is passed, logging stays disabled.
func WithLogger(l *dsgo.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
