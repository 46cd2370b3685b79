package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/eak1mov/go-libmaps/mapdata"
	"github.com/eak1mov/go-libmaps/tile"
	"github.com/gdamore/tcell/v2"
	"github.com/google/subcommands"
)

type viewCmd struct {
	inputPath string
	encoding  string
	roomName  string
}

func (c *viewCmd) Name() string     { return "view" }
func (c *viewCmd) Synopsis() string { return "browse room material layers in the terminal" }
func (c *viewCmd) Usage() string {
	return "maputils view -i <path> [-room <name> -e <encoding>]\n" +
		"keys: n/p next/previous room, b toggle layer, arrows scroll, q quit\n"
}
func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input map file path")
	f.StringVar(&c.encoding, "e", "", "String length encoding (u16, uvarint)")
	f.StringVar(&c.roomName, "room", "", "Room to show first")
}

var materialColors = []tcell.Color{
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorYellow,
	tcell.ColorPurple,
	tcell.ColorTeal,
	tcell.ColorOlive,
	tcell.ColorMaroon,
	tcell.ColorSilver,
}

type viewer struct {
	screen  tcell.Screen
	m       *mapdata.Map
	room    int
	layer   mapdata.Layer
	grid    *tile.Grid[byte]
	scrollX int
	scrollY int
}

func (v *viewer) selectRoom(i int) {
	v.room = (i + len(v.m.Rooms)) % len(v.m.Rooms)
	v.scrollX, v.scrollY = 0, 0
	v.grid = v.m.Rooms[v.room].Grid(v.layer)
}

func (v *viewer) toggleLayer() {
	if v.layer == mapdata.LayerSolids {
		v.layer = mapdata.LayerBackground
	} else {
		v.layer = mapdata.LayerSolids
	}
	v.grid = v.m.Rooms[v.room].Grid(v.layer)
}

func (v *viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()

	for y := range height - 1 {
		for x := range width {
			gx, gy := x+v.scrollX, y+v.scrollY
			if !v.grid.InBounds(gx, gy) {
				continue
			}
			switch material := v.grid.Get(gx, gy, tile.Empty); material {
			case tile.Empty:
				v.screen.SetContent(x, y, '·', nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
			default:
				color := materialColors[int(material)%len(materialColors)]
				v.screen.SetContent(x, y, rune(material), nil, tcell.StyleDefault.Foreground(color))
			}
		}
	}

	room := v.m.Rooms[v.room]
	status := fmt.Sprintf(" %s [%d/%d] %v %dx%d @%d,%d ",
		room.Name, v.room+1, len(v.m.Rooms), v.layer, v.grid.Width, v.grid.Height, v.scrollX, v.scrollY)
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	for i, r := range []rune(status) {
		v.screen.SetContent(i, height-1, r, nil, statusStyle)
	}

	v.screen.Show()
}

// handleInput returns false when the viewer should exit.
func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.scrollX = max(v.scrollX-1, 0)
		case tcell.KeyRight:
			v.scrollX = min(v.scrollX+1, max(v.grid.Width-1, 0))
		case tcell.KeyUp:
			v.scrollY = max(v.scrollY-1, 0)
		case tcell.KeyDown:
			v.scrollY = min(v.scrollY+1, max(v.grid.Height-1, 0))
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'n':
				v.selectRoom(v.room + 1)
			case 'p':
				v.selectRoom(v.room - 1)
			case 'b':
				v.toggleLayer()
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (c *viewCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	m, err := loadMap(c.inputPath, c.encoding)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	if len(m.Rooms) == 0 {
		log.Printf("%s has no rooms", m.Package)
		return subcommands.ExitFailure
	}

	first := 0
	if c.roomName != "" {
		first = -1
		for i, r := range m.Rooms {
			if r.Name == c.roomName {
				first = i
			}
		}
		if first < 0 {
			log.Printf("room not found: %q", c.roomName)
			return subcommands.ExitFailure
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	if err := screen.Init(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer screen.Fini()

	v := &viewer{screen: screen, m: m, layer: mapdata.LayerSolids}
	v.selectRoom(first)
	for {
		v.draw()
		if !v.handleInput(screen.PollEvent()) {
			return subcommands.ExitSuccess
		}
	}
}
