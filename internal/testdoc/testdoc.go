// Package testdoc encodes small map containers for tests.
package testdoc

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/eak1mov/go-libmaps/container/spec"
)

type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node
}

type Attr struct {
	Name  string
	Type  spec.ValueType
	Value any
}

func E(name string, attrs []Attr, children ...*Node) *Node {
	return &Node{Name: name, Attrs: attrs, Children: children}
}

func A(attrs ...Attr) []Attr {
	return attrs
}

func Bool(name string, v bool) Attr        { return Attr{name, spec.ValueBool, v} }
func U8(name string, v uint8) Attr         { return Attr{name, spec.ValueU8, v} }
func I16(name string, v int16) Attr        { return Attr{name, spec.ValueI16, v} }
func I32(name string, v int32) Attr        { return Attr{name, spec.ValueI32, v} }
func F32(name string, v float32) Attr      { return Attr{name, spec.ValueF32, v} }
func Str(name string, v string) Attr       { return Attr{name, spec.ValueString, v} }
func Lookup(name string, v string) Attr    { return Attr{name, spec.ValueLookup, v} }
func RLE(name string, v string) Attr       { return Attr{name, spec.ValueRunLength, v} }
func Raw(name string, t uint8, v any) Attr { return Attr{name, spec.ValueType(t), v} }

type encoder struct {
	enc     spec.LengthEncoding
	lookup  []string
	indices map[string]uint16
}

// Encode writes the container layout for root. Lookup strings are assigned
// in order of first use.
func Encode(pkg string, root *Node, enc spec.LengthEncoding) []byte {
	e := &encoder{enc: enc, indices: make(map[string]uint16)}
	e.collect(root)

	var buf []byte
	if enc == spec.LengthUvarint {
		buf = e.appendString(buf, spec.Magic)
	} else {
		buf = append(buf, spec.Magic...)
	}
	buf = e.appendString(buf, pkg)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(e.lookup)))
	for _, s := range e.lookup {
		buf = e.appendString(buf, s)
	}
	return e.appendNode(buf, root)
}

func (e *encoder) intern(s string) {
	if _, ok := e.indices[s]; !ok {
		e.indices[s] = uint16(len(e.lookup))
		e.lookup = append(e.lookup, s)
	}
}

func (e *encoder) collect(n *Node) {
	e.intern(n.Name)
	for _, a := range n.Attrs {
		e.intern(a.Name)
		if s, ok := a.Value.(string); ok && a.Type == spec.ValueLookup {
			e.intern(s)
		}
	}
	for _, c := range n.Children {
		e.collect(c)
	}
}

func (e *encoder) appendString(buf []byte, s string) []byte {
	if e.enc == spec.LengthUvarint {
		buf = binary.AppendUvarint(buf, uint64(len(s)))
	} else {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(len(s)))
	}
	return append(buf, s...)
}

func (e *encoder) appendNode(buf []byte, n *Node) []byte {
	buf = binary.LittleEndian.AppendUint16(buf, e.indices[n.Name])
	buf = append(buf, uint8(len(n.Attrs)))
	for _, a := range n.Attrs {
		buf = binary.LittleEndian.AppendUint16(buf, e.indices[a.Name])
		buf = append(buf, uint8(a.Type))
		buf = e.appendValue(buf, a)
	}
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(n.Children)))
	for _, c := range n.Children {
		buf = e.appendNode(buf, c)
	}
	return buf
}

func (e *encoder) appendValue(buf []byte, a Attr) []byte {
	// raw payloads let tests write malformed values
	if raw, ok := a.Value.([]byte); ok {
		return append(buf, raw...)
	}
	switch a.Type {
	case spec.ValueBool:
		if a.Value.(bool) {
			return append(buf, 1)
		}
		return append(buf, 0)
	case spec.ValueU8:
		return append(buf, a.Value.(uint8))
	case spec.ValueI16:
		return binary.LittleEndian.AppendUint16(buf, uint16(a.Value.(int16)))
	case spec.ValueI32:
		return binary.LittleEndian.AppendUint32(buf, uint32(a.Value.(int32)))
	case spec.ValueF32:
		return binary.LittleEndian.AppendUint32(buf, math.Float32bits(a.Value.(float32)))
	case spec.ValueLookup:
		if index, ok := a.Value.(uint16); ok {
			return binary.LittleEndian.AppendUint16(buf, index)
		}
		return binary.LittleEndian.AppendUint16(buf, e.indices[a.Value.(string)])
	case spec.ValueString:
		return e.appendString(buf, a.Value.(string))
	case spec.ValueRunLength:
		return AppendRLE(buf, a.Value.(string))
	}
	panic(fmt.Sprintf("testdoc: unsupported value %T for %v", a.Value, a.Type))
}

// AppendRLE run-length encodes s with runs of at most 255 bytes.
func AppendRLE(buf []byte, s string) []byte {
	var payload []byte
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] == s[i] && j-i < math.MaxUint8 {
			j++
		}
		payload = append(payload, uint8(j-i), s[i])
		i = j
	}
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(payload)))
	return append(buf, payload...)
}
