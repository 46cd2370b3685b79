package mapdata_test

import (
	"errors"
	"testing"

	"github.com/eak1mov/go-libmaps/container"
	"github.com/eak1mov/go-libmaps/mapdata"
	"github.com/stretchr/testify/require"
)

func element(attrs map[string]container.Value) *container.Element {
	return &container.Element{Name: "level", Attributes: attrs}
}

func TestAttrWidensIntegers(t *testing.T) {
	for _, v := range []container.Value{
		container.U8Value(40),
		container.I16Value(40),
		container.I32Value(40),
	} {
		el := element(map[string]container.Value{"width": v})

		width, err := mapdata.Attr[int](el, "width")
		require.NoError(t, err, "%v", v.Kind())
		require.Equal(t, 40, width)

		number, err := mapdata.Attr[float64](el, "width")
		require.NoError(t, err, "%v", v.Kind())
		require.Equal(t, 40.0, number)
	}

	el := element(map[string]container.Value{"x": container.F32Value(-4.5)})
	x, err := mapdata.Attr[float32](el, "x")
	require.NoError(t, err)
	require.Equal(t, float32(-4.5), x)

	_, err = mapdata.Attr[int](el, "x")
	require.ErrorIs(t, err, mapdata.ErrInvalidAttributeType)
}

func TestAttrErrors(t *testing.T) {
	el := element(map[string]container.Value{
		"name": container.StringValue("a-00"),
		"dark": container.BoolValue(true),
	})

	_, err := mapdata.Attr[int](el, "missing")
	var missing *mapdata.MissingAttributeError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, "missing", missing.Attribute)
	require.Equal(t, "level", missing.Element)
	require.ErrorIs(t, err, mapdata.ErrMissingAttribute)

	_, err = mapdata.Attr[int](el, "name")
	var invalid *mapdata.InvalidAttributeTypeError
	require.True(t, errors.As(err, &invalid))
	require.Equal(t, "int", invalid.Expected)
	require.Equal(t, container.KindString, invalid.Got)

	_, err = mapdata.Attr[string](el, "dark")
	require.ErrorIs(t, err, mapdata.ErrInvalidAttributeType)

	_, err = mapdata.Attr[bool](el, "name")
	require.ErrorIs(t, err, mapdata.ErrInvalidAttributeType)
}

func TestAttrOr(t *testing.T) {
	el := element(map[string]container.Value{"music": container.I32Value(3)})

	got, err := mapdata.AttrOr(el, "ambience", "none")
	require.NoError(t, err)
	require.Equal(t, "none", got)

	// the default only covers absence, never a kind mismatch
	_, err = mapdata.AttrOr(el, "music", "none")
	require.ErrorIs(t, err, mapdata.ErrInvalidAttributeType)

	n, err := mapdata.AttrOr(el, "music", int64(0))
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
}
