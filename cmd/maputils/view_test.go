package main

import (
	"testing"

	"github.com/eak1mov/go-libmaps/mapdata"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestViewerDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(8, 4)

	m := &mapdata.Map{Rooms: []mapdata.Room{{
		Name:   "a-00",
		Bounds: mapdata.Rect{Width: 16, Height: 16},
		Solids: "1 \n 0",
	}}}
	v := &viewer{screen: screen, m: m, layer: mapdata.LayerSolids}
	v.selectRoom(0)
	v.draw()

	cell := func(x, y int) (rune, tcell.Style) {
		r, _, style, _ := screen.GetContent(x, y)
		return r, style
	}

	r, style := cell(0, 0)
	require.Equal(t, '1', r)
	require.Equal(t, tcell.StyleDefault.Foreground(materialColors['1'%len(materialColors)]), style)

	// a blank material inside the room is still drawn
	spaceStyle := tcell.StyleDefault.Foreground(materialColors[' '%len(materialColors)])
	for _, c := range [][2]int{{1, 0}, {0, 1}} {
		r, style := cell(c[0], c[1])
		require.Equal(t, ' ', r, "cell %v", c)
		require.Equal(t, spaceStyle, style, "cell %v", c)
	}

	r, _ = cell(1, 1)
	require.Equal(t, '·', r)

	// cells past the room stay clear
	for _, c := range [][2]int{{2, 0}, {7, 2}, {0, 2}} {
		_, style := cell(c[0], c[1])
		require.Equal(t, tcell.StyleDefault, style, "cell %v", c)
	}
}
