package autotile_test

import (
	"errors"
	"testing"

	"github.com/eak1mov/go-libmaps/autotile"
	"github.com/eak1mov/go-libmaps/tile"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sampleDefinitions() []autotile.Definition {
	return []autotile.Definition{
		{
			ID:   '1',
			Path: "dirt",
			Rules: []autotile.RuleDef{
				{Mask: "x0x-111-x1x", Tiles: "0,0"},
				{Mask: "padding", Tiles: "1,1; 2,1"},
				{Mask: "center", Tiles: "5,5; 6,5; 7,5"},
			},
		},
		{
			ID:      '2',
			Copy:    '1',
			Path:    "stone",
			Ignores: "1",
			Rules:   []autotile.RuleDef{{Mask: "111-111-111", Tiles: "9,9"}},
		},
	}
}

func sampleRuleset(t *testing.T) *autotile.Ruleset {
	t.Helper()
	rs, err := autotile.NewRuleset(sampleDefinitions())
	require.NoError(t, err)
	return rs
}

func coords(text string) []autotile.Coord {
	tiles, err := autotile.ParseTiles(text)
	if err != nil {
		panic(err)
	}
	return tiles
}

// lastChooser always picks the last candidate.
type lastChooser struct{}

func (lastChooser) IntN(n int) int { return n - 1 }

func TestSelectFirstMatch(t *testing.T) {
	rs := sampleRuleset(t)
	g := tile.ParseGrid(5, 5, "00000\n11111\n11111\n11111\n11111")

	testCases := []struct {
		x, y int
		want []autotile.Coord
	}{
		{2, 1, coords("0,0")},
		{2, 2, coords("1,1; 2,1")},
		{2, 3, coords("5,5; 6,5; 7,5")},
		// bottom row: off-grid cells below count as dirt
		{2, 4, coords("5,5; 6,5; 7,5")},
		{2, 0, nil},
		{-1, 2, nil},
		{5, 5, nil},
	}
	for _, tc := range testCases {
		got, err := rs.Select(g, tc.x, tc.y)
		require.NoError(t, err)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Select(%d, %d) mismatch (-want+got):\n%v", tc.x, tc.y, diff)
		}
	}
}

func TestSelectOffGridDefault(t *testing.T) {
	rs := sampleRuleset(t)

	// a lone cell is surrounded by itself and never sees an edge
	got, err := rs.Select(tile.ParseGrid(1, 1, "1"), 0, 0)
	require.NoError(t, err)
	require.Equal(t, coords("5,5; 6,5; 7,5"), got)
}

func TestSelectIgnores(t *testing.T) {
	g := tile.ParseGrid(1, 2, "b\na")
	defs := func(ignores string) []autotile.Definition {
		return []autotile.Definition{
			{ID: 'a', Ignores: ignores, Rules: []autotile.RuleDef{
				{Mask: "x0x-x1x-xxx", Tiles: "0,0"},
				{Mask: "center", Tiles: "1,1"},
			}},
			{ID: 'b', Rules: []autotile.RuleDef{{Mask: "center", Tiles: "2,2"}}},
		}
	}

	testCases := []struct {
		ignores string
		want    []autotile.Coord
	}{
		{"", coords("1,1")},
		{"b", coords("0,0")},
		{"*", coords("0,0")},
		{"c,d", coords("1,1")},
		// ignoring its own material changes nothing
		{"a", coords("1,1")},
	}
	for _, tc := range testCases {
		t.Run("ignores="+tc.ignores, func(t *testing.T) {
			rs, err := autotile.NewRuleset(defs(tc.ignores))
			require.NoError(t, err)

			got, err := rs.Select(g, 0, 1)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSelectPadding(t *testing.T) {
	rs := sampleRuleset(t)
	g := tile.ParseGrid(7, 7, "1111111\n1111111\n1111111\n1111111\n1111111\n1111111\n1111111")

	got, err := rs.Select(g, 3, 3)
	require.NoError(t, err)
	require.Equal(t, coords("5,5; 6,5; 7,5"), got)

	for _, hole := range []tile.Cell{{X: 1, Y: 3}, {X: 5, Y: 3}, {X: 3, Y: 1}, {X: 3, Y: 5}} {
		g.Set(hole.X, hole.Y, tile.Empty)
		got, err := rs.Select(g, 3, 3)
		require.NoError(t, err)
		require.Equal(t, coords("1,1; 2,1"), got, "hole at %v", hole)
		g.Set(hole.X, hole.Y, '1')
	}

	// diagonal holes two steps away are not padding
	g.Set(1, 1, tile.Empty)
	got, err = rs.Select(g, 3, 3)
	require.NoError(t, err)
	require.Equal(t, coords("5,5; 6,5; 7,5"), got)
}

func TestSelectMalformedMask(t *testing.T) {
	rs, err := autotile.NewRuleset([]autotile.Definition{{ID: '1', Rules: []autotile.RuleDef{
		{Mask: "1111-0-1", Tiles: "3,3"},
		{Mask: "center", Tiles: "4,4"},
	}}})
	require.NoError(t, err)

	got, err := rs.Select(tile.ParseGrid(3, 1, "010"), 1, 0)
	require.NoError(t, err)
	require.Equal(t, coords("3,3"), got)
}

func TestSelectTilesetNotFound(t *testing.T) {
	rs := sampleRuleset(t)
	g := tile.ParseGrid(2, 1, "1z")

	_, err := rs.Select(g, 1, 0)
	require.ErrorIs(t, err, autotile.ErrTilesetNotFound)

	var notFound *autotile.TilesetNotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, byte('z'), notFound.Material)

	_, ok, err := rs.Choose(g, 1, 0, lastChooser{})
	require.False(t, ok)
	require.ErrorIs(t, err, autotile.ErrTilesetNotFound)
}

func TestChoose(t *testing.T) {
	rs := sampleRuleset(t)
	g := tile.ParseGrid(3, 3, "222\n222\n222")

	got, ok, err := rs.Choose(g, 1, 1, lastChooser{})
	require.NoError(t, err)
	require.True(t, ok)
	want := autotile.Placement{
		Cell:     tile.Cell{X: 1, Y: 1},
		Material: '2',
		Tile:     autotile.Coord{X: 7, Y: 5},
		Path:     "stone",
	}
	require.Equal(t, want, got)

	_, ok, err = rs.Choose(tile.ParseGrid(1, 1, "0"), 0, 0, lastChooser{})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestChooseEmptyCandidates(t *testing.T) {
	rs, err := autotile.NewRuleset([]autotile.Definition{{ID: '1', Rules: []autotile.RuleDef{{Mask: "center"}}}})
	require.NoError(t, err)

	_, ok, err := rs.Choose(tile.ParseGrid(1, 1, "1"), 0, 0, lastChooser{})
	require.NoError(t, err)
	require.False(t, ok)
}
