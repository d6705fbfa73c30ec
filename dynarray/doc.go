// Package dynarray implements a growable array over a single exclusively
// owned fixed-size storage block.
//
// Architecture:
//   - One storage block at a time; growth allocates a doubled replacement,
//     copies the live elements in logical order, and releases the old block
//   - Head offset: prepend moves the logical head backward instead of
//     shifting, so both ends extend in amortized O(1)
//   - Lazy reversal: Reverse toggles a flag consulted during index
//     translation; no element moves
//
// The logical-index-to-physical-slot mapping is a pure function of
// (head, capacity, length, reversed), kept separate from storage so it can
// be tested on its own.
//
// Instances are not safe for concurrent use.
package dynarray
