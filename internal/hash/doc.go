// Package hash provides the hashing primitives shared by the hash map and
// the bloom filter.
//
// Prehashing uses CRC32-Castagnoli, which is hardware accelerated on x86
// (SSE4.2) and ARM (CRC extension). Compression into a table of m buckets
// uses the multiply-add-divide (MAD) scheme ((a*h + b) mod p) mod m with
// p = 4294967311, the first prime above the 32-bit hash universe; a and b
// are drawn at construction time so every map instance gets its own member
// of the universal family.
package hash
