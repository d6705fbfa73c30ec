package codec

import (
	"bytes"
	"errors"
	"io"

	"github.com/hupe1980/dsgo/bitvector"
)

const (
	magic   = "DSBV"
	version = uint8(1)

	headerSize = 6 // magic + version + compression type
)

var (
	// ErrBadMagic indicates the snapshot header magic is invalid.
	ErrBadMagic = errors.New("codec: snapshot magic invalid")
	// ErrBadVersion indicates an unsupported snapshot version.
	ErrBadVersion = errors.New("codec: snapshot version unsupported")
	// ErrUnknownCompression indicates an unrecognized compression type.
	ErrUnknownCompression = errors.New("codec: unknown compression type")
)

// EncodeBitVector writes a snapshot of v. The bit vector's lazy flags are
// resolved into the payload, so the decoded vector is flag-free with the
// same observable bits.
func EncodeBitVector(w io.Writer, v *bitvector.BitVector, compressionType CompressionType) (int64, error) {
	var payload bytes.Buffer
	if _, err := v.WriteTo(&payload); err != nil {
		return 0, err
	}

	block, err := compressBlock(payload.Bytes(), compressionType)
	if err != nil {
		return 0, err
	}

	header := make([]byte, 0, headerSize)
	header = append(header, magic...)
	header = append(header, version, byte(compressionType))

	n, err := w.Write(header)
	if err != nil {
		return int64(n), err
	}

	bn, err := w.Write(block)
	return int64(n + bn), err
}

// DecodeBitVector reads a snapshot produced by EncodeBitVector.
func DecodeBitVector(r io.Reader) (*bitvector.BitVector, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < headerSize {
		return nil, ErrBadMagic
	}
	if string(data[:4]) != magic {
		return nil, ErrBadMagic
	}
	if data[4] != version {
		return nil, ErrBadVersion
	}

	compressionType := CompressionType(data[5])
	switch compressionType {
	case CompressionNone, CompressionLZ4, CompressionZSTD:
	default:
		return nil, ErrUnknownCompression
	}

	payload, err := decompressBlock(data[headerSize:], compressionType)
	if err != nil {
		return nil, err
	}

	v, err := bitvector.New()
	if err != nil {
		return nil, err
	}
	if _, err := v.ReadFrom(bytes.NewReader(payload)); err != nil {
		return nil, err
	}
	return v, nil
}
