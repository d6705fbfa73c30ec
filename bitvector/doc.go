// Package bitvector packs individual bits into 64-bit words stored in a
// dynamic array, with O(1) logical reversal and O(1) logical complement.
//
// Two translation layers are kept apart: bit-level masking lives here, and
// word-level storage is delegated to dynarray. A logical bit index passes
// through the reversal flag and a head-bit offset to find its physical bit
// position; the position's word index is then resolved by the array, which
// applies its own layout underneath.
//
// Reverse and Complement never touch storage. Reversal flips the direction
// of the index translation; complement is XORed into every read and write.
//
// Instances are not safe for concurrent use.
package bitvector
