package bloom

import "math"

// DefaultBitsPerKey aims at a comfortably low fill rate for typical use.
const DefaultBitsPerKey = 5

// BitsFor returns the filter size in bits for n expected keys under the
// given per-key budget.
func BitsFor(n, bitsPerKey int) int {
	return n * bitsPerKey
}

// OptimalK returns the probe count minimizing the false positive rate for
// a bits-per-key budget: ln 2 times the budget, at least one probe.
func OptimalK(bitsPerKey int) int {
	k := int(math.Round(math.Ln2 * float64(bitsPerKey)))
	if k < 1 {
		return 1
	}
	return k
}

// FalsePositiveRate estimates the rate after n insertions into m bits with
// k probes: (1 - e^(-kn/m))^k.
func FalsePositiveRate(n, m, k int) float64 {
	if m == 0 || n == 0 {
		return 0
	}
	return math.Pow(1-math.Exp(-float64(k)*float64(n)/float64(m)), float64(k))
}
