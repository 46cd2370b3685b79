// Package container decodes the binary map container into a generic element
// tree. The layout is described in package spec.
package container

import (
	"fmt"

	"github.com/eak1mov/go-libmaps/container/spec"
)

// DecodeError reports where in the input decoding failed.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type decodeConfig struct {
	LengthEncoding spec.LengthEncoding
}

type DecodeOption func(*decodeConfig)

func WithLengthEncoding(enc spec.LengthEncoding) DecodeOption {
	return func(c *decodeConfig) { c.LengthEncoding = enc }
}

type decoder struct {
	data   []byte
	rest   []byte
	enc    spec.LengthEncoding
	lookup []string
}

// Decode decodes a whole document. Any failure is terminal; no partial tree is returned.
func Decode(data []byte, opts ...DecodeOption) (*Document, error) {
	config := decodeConfig{LengthEncoding: spec.LengthU16}
	for _, opt := range opts {
		opt(&config)
	}

	d := &decoder{data: data, rest: data, enc: config.LengthEncoding}

	rest, err := spec.ReadHeader(d.rest, d.enc)
	if err != nil {
		return nil, d.fail(err)
	}
	d.rest = rest

	pkg, err := d.readString()
	if err != nil {
		return nil, err
	}

	if err := d.readLookupTable(); err != nil {
		return nil, err
	}

	root, err := d.readElement(0)
	if err != nil {
		return nil, err
	}

	if len(d.rest) > spec.MaxTrailingBytes {
		return nil, d.fail(spec.ErrTrailingData)
	}

	return &Document{Package: pkg, Root: root}, nil
}

func (d *decoder) offset() int {
	return len(d.data) - len(d.rest)
}

func (d *decoder) fail(err error) error {
	return &DecodeError{Offset: d.offset(), Err: err}
}

func (d *decoder) readU8() (uint8, error) {
	v, rest, err := spec.ReadU8(d.rest)
	if err != nil {
		return 0, d.fail(err)
	}
	d.rest = rest
	return v, nil
}

func (d *decoder) readU16() (uint16, error) {
	v, rest, err := spec.ReadU16(d.rest)
	if err != nil {
		return 0, d.fail(err)
	}
	d.rest = rest
	return v, nil
}

func (d *decoder) readString() (string, error) {
	raw, rest, err := spec.ReadString(d.rest, d.enc)
	if err != nil {
		return "", d.fail(err)
	}
	d.rest = rest
	return string(raw), nil
}

func (d *decoder) readLookupTable() error {
	count, err := d.readU16()
	if err != nil {
		return err
	}
	d.lookup = make([]string, count)
	for i := range d.lookup {
		if d.lookup[i], err = d.readString(); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) readLookup() (string, error) {
	offset := d.offset()
	index, err := d.readU16()
	if err != nil {
		return "", err
	}
	if int(index) >= len(d.lookup) {
		return "", &DecodeError{
			Offset: offset,
			Err:    fmt.Errorf("%w: %d >= %d", spec.ErrInvalidLookupIndex, index, len(d.lookup)),
		}
	}
	return d.lookup[index], nil
}

func (d *decoder) readElement(depth int) (*Element, error) {
	if depth > spec.MaxDepth {
		return nil, d.fail(fmt.Errorf("%w: %d", spec.ErrTooDeep, depth))
	}

	name, err := d.readLookup()
	if err != nil {
		return nil, err
	}

	attrCount, err := d.readU8()
	if err != nil {
		return nil, err
	}

	el := &Element{Name: name}
	if attrCount > 0 {
		el.Attributes = make(map[string]Value, attrCount)
	}
	for range attrCount {
		attrName, err := d.readLookup()
		if err != nil {
			return nil, err
		}
		value, err := d.readValue()
		if err != nil {
			return nil, err
		}
		el.Attributes[attrName] = value
	}

	childCount, err := d.readU16()
	if err != nil {
		return nil, err
	}
	if childCount > 0 {
		el.Children = make([]*Element, 0, childCount)
	}
	for range childCount {
		child, err := d.readElement(depth + 1)
		if err != nil {
			return nil, err
		}
		el.Children = append(el.Children, child)
	}

	return el, nil
}

func (d *decoder) readValue() (Value, error) {
	offset := d.offset()
	discriminant, err := d.readU8()
	if err != nil {
		return Value{}, err
	}

	valueType := spec.ValueType(discriminant)
	switch valueType {
	case spec.ValueLookup:
		s, err := d.readLookup()
		return StringValue(s), err
	case spec.ValueString:
		s, err := d.readString()
		return StringValue(s), err
	}

	var value Value
	var rest []byte
	switch valueType {
	case spec.ValueBool:
		var v bool
		v, rest, err = spec.ReadBool(d.rest)
		value = BoolValue(v)
	case spec.ValueU8:
		var v uint8
		v, rest, err = spec.ReadU8(d.rest)
		value = U8Value(v)
	case spec.ValueI16:
		var v int16
		v, rest, err = spec.ReadI16(d.rest)
		value = I16Value(v)
	case spec.ValueI32:
		var v int32
		v, rest, err = spec.ReadI32(d.rest)
		value = I32Value(v)
	case spec.ValueF32:
		var v float32
		v, rest, err = spec.ReadF32(d.rest)
		value = F32Value(v)
	case spec.ValueRunLength:
		var v string
		v, rest, err = spec.ReadRLEString(d.rest)
		value = StringValue(v)
	default:
		return Value{}, &DecodeError{
			Offset: offset,
			Err:    fmt.Errorf("%w: %d", spec.ErrInvalidValueType, discriminant),
		}
	}
	if err != nil {
		return Value{}, d.fail(err)
	}
	d.rest = rest
	return value, nil
}
