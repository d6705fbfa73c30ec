package hashmap

import "github.com/hupe1980/dsgo"

type options struct {
	seed   int64
	seeded bool
	logger *dsgo.Logger
}

// Option configures Map construction.
type Option func(*options)

// WithSeed fixes the random draw of the MAD compression parameters, making
// bucket placement deterministic. Intended for tests.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithLogger configures structured logging. Rehash events are logged at
// debug level. If nil is passed, logging stays disabled.
func WithLogger(l *dsgo.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
