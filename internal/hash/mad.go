package hash

import "math/rand"

// madPrime is the first prime above 2^32 - 1. Compressing modulo a prime
// larger than the 32-bit hash universe keeps the MAD family universal.
const madPrime = 4294967311

// MAD compresses 32-bit hash values into [0, m) using the
// multiply-add-divide scheme ((a*h + b) mod p) mod m.
type MAD struct {
	a uint64
	b uint64
}

// NewMAD draws the multiplier and increment from the given source.
// A nil source seeds from the global generator.
func NewMAD(rng *rand.Rand) MAD {
	randInt := rand.Int63n
	if rng != nil {
		randInt = rng.Int63n
	}
	return MAD{
		a: uint64(randInt(madPrime-1000) + 1000),
		b: uint64(randInt(madPrime-1000) + 1000),
	}
}

// Compress maps h into [0, m). m must be positive.
func (c MAD) Compress(h uint32, m int) int {
	return int(((c.a*uint64(h) + c.b) % madPrime) % uint64(m))
}
