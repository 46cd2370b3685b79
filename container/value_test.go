package container_test

import (
	"testing"

	"github.com/eak1mov/go-libmaps/container"
	"github.com/stretchr/testify/require"
)

func TestValueAccessors(t *testing.T) {
	testCases := []struct {
		Name   string
		Value  container.Value
		Kind   container.Kind
		Int    int64
		IsInt  bool
		Number float64
		IsNum  bool
	}{
		{Name: "U8", Value: container.U8Value(200), Kind: container.KindU8, Int: 200, IsInt: true, Number: 200, IsNum: true},
		{Name: "I16", Value: container.I16Value(-300), Kind: container.KindI16, Int: -300, IsInt: true, Number: -300, IsNum: true},
		{Name: "I32", Value: container.I32Value(1 << 20), Kind: container.KindI32, Int: 1 << 20, IsInt: true, Number: 1 << 20, IsNum: true},
		{Name: "F32", Value: container.F32Value(2.5), Kind: container.KindF32, Number: 2.5, IsNum: true},
		{Name: "Bool", Value: container.BoolValue(true), Kind: container.KindBool},
		{Name: "String", Value: container.StringValue("12"), Kind: container.KindString},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Kind, tc.Value.Kind())

			i, ok := tc.Value.Int()
			require.Equal(t, tc.IsInt, ok)
			require.Equal(t, tc.Int, i)

			n, ok := tc.Value.Number()
			require.Equal(t, tc.IsNum, ok)
			require.Equal(t, tc.Number, n)

			_, ok = tc.Value.Bool()
			require.Equal(t, tc.Kind == container.KindBool, ok)

			_, ok = tc.Value.Text()
			require.Equal(t, tc.Kind == container.KindString, ok)
		})
	}
}

func TestValueString(t *testing.T) {
	require.Equal(t, "true", container.BoolValue(true).String())
	require.Equal(t, "-7", container.I16Value(-7).String())
	require.Equal(t, "0.25", container.F32Value(0.25).String())
	require.Equal(t, `"a\nb"`, container.StringValue("a\nb").String())
	require.Equal(t, "u8", container.KindU8.String())
}
