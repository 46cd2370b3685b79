package autotile_test

import (
	"testing"

	"github.com/eak1mov/go-libmaps/autotile"
	"github.com/eak1mov/go-libmaps/tile"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRenderGrid(t *testing.T) {
	rs := sampleRuleset(t)
	g := tile.ParseGrid(3, 2, "01z\n111")

	layer := autotile.RenderGrid(g, rs, lastChooser{})
	require.Len(t, layer.Placements, 4)
	require.Empty(t, layer.Unresolved)
	require.Equal(t, []autotile.Placement{{Cell: tile.Cell{X: 2, Y: 0}, Material: 'z'}}, layer.Missing)
	require.ErrorIs(t, layer.Err(), autotile.ErrTilesetNotFound)

	require.Equal(t, tile.Cell{X: 1, Y: 0}, layer.Placements[0].Cell)
	require.Equal(t, "dirt", layer.Placements[0].Path)
	require.Equal(t, tile.Cell{X: 0, Y: 1}, layer.Placements[1].Cell)

	require.NoError(t, autotile.RenderGrid(tile.ParseGrid(1, 1, "1"), rs, lastChooser{}).Err())
}

func TestRenderGridUnresolved(t *testing.T) {
	rs, err := autotile.NewRuleset([]autotile.Definition{{ID: '1', Rules: []autotile.RuleDef{
		{Mask: "x0x-x1x-xxx", Tiles: "0,0"},
	}}})
	require.NoError(t, err)

	layer := autotile.RenderGrid(tile.ParseGrid(1, 3, "0\n1\n1"), rs, lastChooser{})
	require.Equal(t, []tile.Cell{{X: 0, Y: 2}}, layer.Unresolved)
	require.Len(t, layer.Placements, 1)
	require.NoError(t, layer.Err())
}

func TestRenderGridDeterministic(t *testing.T) {
	rs := sampleRuleset(t)
	g := tile.ParseGrid(8, 4, "00000000\n11111111\n11111111\n22222222")

	seed := autotile.RoomSeed(42, "a-00")
	first := autotile.RenderGrid(g, rs, autotile.NewRand(seed))
	second := autotile.RenderGrid(g, rs, autotile.NewRand(seed))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("RenderGrid mismatch (-want+got):\n%v", diff)
	}
	require.Len(t, first.Placements, 24)

	for _, p := range first.Placements {
		tiles, err := rs.Select(g, p.Cell.X, p.Cell.Y)
		require.NoError(t, err)
		require.Contains(t, tiles, p.Tile)
	}
}

func TestRoomSeed(t *testing.T) {
	require.Equal(t, autotile.RoomSeed(1, "a-00"), autotile.RoomSeed(1, "a-00"))
	require.NotEqual(t, autotile.RoomSeed(1, "a-00"), autotile.RoomSeed(1, "a-01"))
	require.NotEqual(t, autotile.RoomSeed(1, "a-00"), autotile.RoomSeed(2, "a-00"))
}
