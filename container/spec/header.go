// Package spec implements the low-level layout of the binary map container:
// the magic header, value type discriminants and the little-endian cursor
// primitives used by the element decoder.
package spec

import (
	"errors"
	"fmt"
	"io"
)

const (
	Magic       = "CELESTE MAP"
	MagicLength = len(Magic)

	// Slack allowed after the root element; one document variant writes a stray byte.
	MaxTrailingBytes = 1

	// Deepest element nesting accepted below the root.
	MaxDepth = 1000
)

type ValueType uint8

const (
	ValueBool ValueType = iota
	ValueU8
	ValueI16
	ValueI32
	ValueF32
	ValueLookup
	ValueString
	ValueRunLength
)

func (t ValueType) Valid() bool {
	return t <= ValueRunLength
}

func (t ValueType) String() string {
	switch t {
	case ValueBool:
		return "bool"
	case ValueU8:
		return "u8"
	case ValueI16:
		return "i16"
	case ValueI32:
		return "i32"
	case ValueF32:
		return "f32"
	case ValueLookup:
		return "lookup"
	case ValueString:
		return "string"
	case ValueRunLength:
		return "rle"
	}
	return fmt.Sprintf("ValueType(%d)", uint8(t))
}

// LengthEncoding selects how string lengths are prefixed.
type LengthEncoding uint8

const (
	// LengthU16 prefixes strings with a 16-bit little-endian byte count.
	LengthU16 LengthEncoding = iota
	// LengthUvarint prefixes strings with a base-128 varint byte count.
	LengthUvarint
)

var (
	ErrUnexpectedEnd      = fmt.Errorf("unexpected end of input: %w", io.ErrUnexpectedEOF)
	ErrInvalidHeader      = errors.New("invalid file header")
	ErrInvalidLookupIndex = errors.New("invalid lookup index")
	ErrInvalidValueType   = errors.New("invalid value type")
	ErrTrailingData       = errors.New("trailing data after root element")
	ErrInvalidRunLength   = errors.New("odd run-length byte count")
	ErrVarintOverflow     = errors.New("varint overflows 64 bits")
	ErrInvalidText        = errors.New("invalid utf-8 text")
	ErrTooDeep            = errors.New("element nesting too deep")
)

// ReadHeader checks the magic at the front of buffer and returns the rest.
func ReadHeader(buffer []byte, enc LengthEncoding) ([]byte, error) {
	var magic []byte
	var err error
	if enc == LengthUvarint {
		magic, buffer, err = ReadString(buffer, enc)
	} else {
		magic, buffer, err = ReadBytes(buffer, MagicLength)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	if string(magic) != Magic {
		return nil, ErrInvalidHeader
	}
	return buffer, nil
}
