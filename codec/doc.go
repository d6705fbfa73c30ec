// Package codec writes and reads compressed container snapshots.
//
// A snapshot is a small header (magic, version, compression type) followed
// by one compressed block holding the container's serialized form. Blocks
// carry their own size header and fall back to stored-uncompressed when
// compression does not pay off.
//
// Changing the block format is a breaking-change boundary: snapshots
// written by older versions may no longer decode.
package codec
