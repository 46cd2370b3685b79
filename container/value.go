package container

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindBool Kind = iota
	KindU8
	KindI16
	KindI32
	KindF32
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindU8:
		return "u8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindF32:
		return "f32"
	case KindString:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is a decoded attribute value. The kind decides which accessor succeeds:
// integers widen into Int and Number, F32 only into Number, and strings and
// booleans never convert.
type Value struct {
	kind Kind
	i    int32
	f    float32
	s    string
}

func BoolValue(v bool) Value {
	if v {
		return Value{kind: KindBool, i: 1}
	}
	return Value{kind: KindBool}
}

func U8Value(v uint8) Value      { return Value{kind: KindU8, i: int32(v)} }
func I16Value(v int16) Value     { return Value{kind: KindI16, i: int32(v)} }
func I32Value(v int32) Value     { return Value{kind: KindI32, i: v} }
func F32Value(v float32) Value   { return Value{kind: KindF32, f: v} }
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

func (v Value) Kind() Kind     { return v.kind }
func (v Value) IsInt() bool    { return v.kind == KindU8 || v.kind == KindI16 || v.kind == KindI32 }
func (v Value) IsNumber() bool { return v.IsInt() || v.kind == KindF32 }

func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.i != 0, true
}

func (v Value) Int() (int64, bool) {
	if !v.IsInt() {
		return 0, false
	}
	return int64(v.i), true
}

func (v Value) Number() (float64, bool) {
	if v.kind == KindF32 {
		return float64(v.f), true
	}
	if v.IsInt() {
		return float64(v.i), true
	}
	return 0, false
}

func (v Value) Text() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.i != 0)
	case KindF32:
		return strconv.FormatFloat(float64(v.f), 'g', -1, 32)
	case KindString:
		return strconv.Quote(v.s)
	}
	return strconv.FormatInt(int64(v.i), 10)
}
