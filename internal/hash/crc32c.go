package hash

import (
	"encoding/binary"
	"hash/crc32"
)

// crc32cTable is pre-computed for CRC32-Castagnoli polynomial.
// Computing this once avoids repeated MakeTable calls.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
// Uses hardware acceleration when available (SSE4.2, ARM CRC).
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// Pair64 derives two 32-bit hashes from key, packed as the high and low
// halves of a uint64. The halves are CRC32C checksums of the key and of the
// key with a one-byte domain prefix, which gives enough independence for
// double-hashing probe schedules.
func Pair64(key []byte) uint64 {
	h1 := CRC32C(key)

	buf := make([]byte, len(key)+1)
	buf[0] = 0x5c
	copy(buf[1:], key)
	h2 := CRC32C(buf)

	return uint64(h1)<<32 | uint64(h2)
}

// Uint64Bytes encodes v as 8 little-endian bytes, for hashing integer keys.
func Uint64Bytes(v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b[:]
}
