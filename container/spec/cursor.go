package spec

import (
	"encoding/binary"
	"math"
	"strings"
	"unicode/utf8"
)

// All readers consume from the front of b and return the decoded value
// together with the remaining bytes.

func ReadBytes(b []byte, n int) ([]byte, []byte, error) {
	if n < 0 || len(b) < n {
		return nil, b, ErrUnexpectedEnd
	}
	return b[:n], b[n:], nil
}

func ReadU8(b []byte) (uint8, []byte, error) {
	if len(b) < 1 {
		return 0, b, ErrUnexpectedEnd
	}
	return b[0], b[1:], nil
}

func ReadBool(b []byte) (bool, []byte, error) {
	v, rest, err := ReadU8(b)
	return v != 0, rest, err
}

func ReadU16(b []byte) (uint16, []byte, error) {
	if len(b) < 2 {
		return 0, b, ErrUnexpectedEnd
	}
	return binary.LittleEndian.Uint16(b), b[2:], nil
}

func ReadI16(b []byte) (int16, []byte, error) {
	v, rest, err := ReadU16(b)
	return int16(v), rest, err
}

func ReadU32(b []byte) (uint32, []byte, error) {
	if len(b) < 4 {
		return 0, b, ErrUnexpectedEnd
	}
	return binary.LittleEndian.Uint32(b), b[4:], nil
}

func ReadI32(b []byte) (int32, []byte, error) {
	v, rest, err := ReadU32(b)
	return int32(v), rest, err
}

func ReadF32(b []byte) (float32, []byte, error) {
	v, rest, err := ReadU32(b)
	return math.Float32frombits(v), rest, err
}

// ReadUvarint decodes a base-128 varint: 7 bits per byte, least significant
// group first, high bit set on every byte but the last.
func ReadUvarint(b []byte) (uint64, []byte, error) {
	value, n := binary.Uvarint(b)
	if n == 0 {
		return 0, b, ErrUnexpectedEnd
	}
	if n < 0 {
		return 0, b, ErrVarintOverflow
	}
	return value, b[n:], nil
}

func readLength(b []byte, enc LengthEncoding) (int, []byte, error) {
	if enc == LengthUvarint {
		v, rest, err := ReadUvarint(b)
		if err != nil {
			return 0, b, err
		}
		if v > math.MaxInt32 {
			return 0, b, ErrUnexpectedEnd
		}
		return int(v), rest, nil
	}
	v, rest, err := ReadU16(b)
	return int(v), rest, err
}

// ReadString returns the raw bytes of a length-prefixed string.
// The bytes are not validated as UTF-8.
func ReadString(b []byte, enc LengthEncoding) ([]byte, []byte, error) {
	n, rest, err := readLength(b, enc)
	if err != nil {
		return nil, b, err
	}
	s, rest, err := ReadBytes(rest, n)
	if err != nil {
		return nil, b, err
	}
	return s, rest, nil
}

// ReadRLEString expands a run-length encoded string: a 16-bit byte count
// followed by (repeat, char) pairs.
func ReadRLEString(b []byte) (string, []byte, error) {
	count, rest, err := ReadU16(b)
	if err != nil {
		return "", b, err
	}
	if count%2 != 0 {
		return "", b, ErrInvalidRunLength
	}
	payload, rest, err := ReadBytes(rest, int(count))
	if err != nil {
		return "", b, err
	}

	size := 0
	for i := 0; i < len(payload); i += 2 {
		size += int(payload[i])
	}

	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < len(payload); i += 2 {
		for range payload[i] {
			sb.WriteByte(payload[i+1])
		}
	}
	return sb.String(), rest, nil
}

// ValidText returns raw as a string view, or ErrInvalidText.
func ValidText(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", ErrInvalidText
	}
	return string(raw), nil
}
