// Package bloom implements a bloom filter backed by the bit vector.
//
// A key is inserted by setting k probe bits derived from one CRC32C hash
// pair via double hashing: probe i lands at (h1 + i*h2) mod m. Membership
// is the AND of the same k bits; false negatives cannot occur, false
// positives can.
//
// Sizing follows a bits-per-key budget, defaulting to 5 bits per expected
// key with the matching optimal probe count.
//
// Instances are not safe for concurrent use.
package bloom
