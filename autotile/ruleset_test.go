package autotile_test

import (
	"testing"

	"github.com/eak1mov/go-libmaps/autotile"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseMask(t *testing.T) {
	testCases := []struct {
		text string
		want string
	}{
		{"center", "center"},
		{"padding", "padding"},
		{"x0x-111-x1x", "x0x-111-x1x"},
		{"000-010-000", "000-010-000"},
		{"1?1-x1x-000", "1x1-x1x-000"},
		{"11-111-111", "xxx-xxx-xxx"},
		{"111-111", "xxx-xxx-xxx"},
		{"", "xxx-xxx-xxx"},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.want, autotile.ParseMask(tc.text).String(), tc.text)
	}

	mask := autotile.ParseMask("x0x-111-x1x")
	require.Equal(t, autotile.MaskPattern, mask.Kind)
	require.Equal(t, autotile.Absent, mask.Pattern[1])
	require.Equal(t, autotile.Present, mask.Pattern[4])
	require.Equal(t, autotile.Any, mask.Pattern[8])
}

func TestParseTiles(t *testing.T) {
	got, err := autotile.ParseTiles("0,0; 1,2;3, 4 ;")
	require.NoError(t, err)
	want := []autotile.Coord{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseTiles mismatch (-want+got):\n%v", diff)
	}

	got, err = autotile.ParseTiles("")
	require.NoError(t, err)
	require.Empty(t, got)

	for _, bad := range []string{"3", "a,b", "1,-1", "0,0;1"} {
		_, err := autotile.ParseTiles(bad)
		require.ErrorIs(t, err, autotile.ErrInvalidTiles, bad)
	}
}

func TestParseIgnores(t *testing.T) {
	require.Equal(t, autotile.Ignores{}, autotile.ParseIgnores(""))
	require.Equal(t, autotile.Ignores{All: true}, autotile.ParseIgnores("*"))

	ig := autotile.ParseIgnores("a, b,c")
	require.Equal(t, []byte("abc"), ig.Chars)
	require.True(t, ig.Contains('b'))
	require.False(t, ig.Contains('d'))
	require.True(t, autotile.ParseIgnores("*").Contains('d'))
}

func TestNewRulesetCopy(t *testing.T) {
	rs, err := autotile.NewRuleset(sampleDefinitions())
	require.NoError(t, err)
	require.Equal(t, []byte("12"), rs.IDs())

	dirt, ok := rs.Tileset('1')
	require.True(t, ok)
	stone, ok := rs.Tileset('2')
	require.True(t, ok)

	require.Len(t, stone.Rules, len(dirt.Rules)+1)
	if diff := cmp.Diff(dirt.Rules, stone.Rules[:len(dirt.Rules)]); diff != "" {
		t.Errorf("copied rules mismatch (-want+got):\n%v", diff)
	}
	require.Equal(t, "111-111-111", stone.Rules[len(stone.Rules)-1].Mask.String())
	require.Equal(t, "stone", stone.Path)
	require.Equal(t, []byte("1"), stone.Ignores.Chars)

	_, ok = rs.Tileset('9')
	require.False(t, ok)
}

func TestNewRulesetErrors(t *testing.T) {
	_, err := autotile.NewRuleset([]autotile.Definition{{ID: '2', Copy: '1'}})
	require.ErrorIs(t, err, autotile.ErrUnknownCopy)

	// the copy source has to be declared first
	_, err = autotile.NewRuleset([]autotile.Definition{{ID: '2', Copy: '1'}, {ID: '1'}})
	require.ErrorIs(t, err, autotile.ErrUnknownCopy)

	_, err = autotile.NewRuleset([]autotile.Definition{{ID: '1', Rules: []autotile.RuleDef{{Mask: "center", Tiles: "x"}}}})
	require.ErrorIs(t, err, autotile.ErrInvalidTiles)

	_, err = autotile.NewRuleset([]autotile.Definition{{Path: "nothing"}})
	require.ErrorIs(t, err, autotile.ErrInvalidDefinition)
}

func TestNewRulesetRedeclare(t *testing.T) {
	rs, err := autotile.NewRuleset([]autotile.Definition{
		{ID: '1', Path: "old"},
		{ID: '1', Path: "new"},
	})
	require.NoError(t, err)

	ts, ok := rs.Tileset('1')
	require.True(t, ok)
	require.Equal(t, "new", ts.Path)
}
