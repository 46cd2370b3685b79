package mapdata

import (
	"github.com/eak1mov/go-libmaps/container"
)

// Scalar lists the Go types an attribute can be extracted as.
type Scalar interface {
	bool | int | int64 | float32 | float64 | string
}

// extract converts v into T. Integer targets accept any integer kind, float
// targets any numeric kind.
func extract[T Scalar](v container.Value) (T, string, bool) {
	var result T
	switch p := any(&result).(type) {
	case *bool:
		b, ok := v.Bool()
		*p = b
		return result, "bool", ok
	case *int:
		i, ok := v.Int()
		*p = int(i)
		return result, "int", ok
	case *int64:
		i, ok := v.Int()
		*p = i
		return result, "int", ok
	case *float32:
		n, ok := v.Number()
		*p = float32(n)
		return result, "number", ok
	case *float64:
		n, ok := v.Number()
		*p = n
		return result, "number", ok
	case *string:
		s, ok := v.Text()
		*p = s
		return result, "string", ok
	}
	panic("unreachable")
}

// Attr returns the named attribute of el as T.
func Attr[T Scalar](el *container.Element, name string) (T, error) {
	v, found := el.Attr(name)
	if !found {
		var zero T
		return zero, &MissingAttributeError{Attribute: name, Element: el.Name}
	}
	result, expected, ok := extract[T](v)
	if !ok {
		var zero T
		return zero, &InvalidAttributeTypeError{Attribute: name, Expected: expected, Got: v.Kind()}
	}
	return result, nil
}

// AttrOr is like Attr but returns def when the attribute is absent.
// A present attribute of the wrong kind is still an error.
func AttrOr[T Scalar](el *container.Element, name string, def T) (T, error) {
	if _, found := el.Attr(name); !found {
		return def, nil
	}
	return Attr[T](el, name)
}

// attrReader reads several attributes of one element, keeping the first error.
type attrReader struct {
	el  *container.Element
	err error
}

func read[T Scalar](r *attrReader, name string) T {
	var v T
	if r.err == nil {
		v, r.err = Attr[T](r.el, name)
	}
	return v
}

func readOr[T Scalar](r *attrReader, name string, def T) T {
	if r.err != nil {
		return def
	}
	var v T
	v, r.err = AttrOr(r.el, name, def)
	return v
}
