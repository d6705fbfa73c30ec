package bitvector

import (
	"encoding/binary"
	"io"
)

// WriteTo serializes the vector: bit length as uint64 followed by the
// packed logical words, little-endian. The written form is normalized —
// reversal, complement and the head offset are resolved into the bits, so
// reading it back yields a flag-free vector with identical observable
// state.
func (v *BitVector) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.LittleEndian, uint64(v.bitLen)); err != nil {
		return 0, err
	}
	n := int64(8)

	for _, word := range v.ToWords() {
		if err := binary.Write(w, binary.LittleEndian, word); err != nil {
			return n, err
		}
		n += 8
	}
	return n, nil
}

// ReadFrom replaces the vector's contents with a serialized form produced
// by WriteTo.
func (v *BitVector) ReadFrom(r io.Reader) (int64, error) {
	var bitLen uint64
	if err := binary.Read(r, binary.LittleEndian, &bitLen); err != nil {
		return 0, err
	}
	n := int64(8)

	fresh, err := NewWithSize(int(bitLen))
	if err != nil {
		return n, err
	}

	for k := 0; k < fresh.words.Len(); k++ {
		var word uint64
		if err := binary.Read(r, binary.LittleEndian, &word); err != nil {
			return n, err
		}
		n += 8
		if err := fresh.words.Set(k, word); err != nil {
			return n, err
		}
	}

	*v = *fresh
	return n, nil
}
