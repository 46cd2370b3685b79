package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/eak1mov/go-libmaps/mapdata"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type renderCmd struct {
	inputPath  string
	encoding   string
	fgRuleset  string
	bgRuleset  string
	roomName   string
	outputPath string
	seed       uint64
}

func (c *renderCmd) Name() string     { return "render" }
func (c *renderCmd) Synopsis() string { return "autotile room layers and print tile placements" }
func (c *renderCmd) Usage() string {
	return "maputils render -i <path> -fg <path> [-bg <path> -room <name> -o <path> -seed <n> -e <encoding>]\n"
}
func (c *renderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input map file path")
	f.StringVar(&c.encoding, "e", "", "String length encoding (u16, uvarint)")
	f.StringVar(&c.fgRuleset, "fg", "", "Foreground tileset XML path (solids layer)")
	f.StringVar(&c.bgRuleset, "bg", "", "Background tileset XML path (bg layer)")
	f.StringVar(&c.roomName, "room", "", "Render only this room")
	f.StringVar(&c.outputPath, "o", "", "Output file path or pattern with {room} and {layer} (stdout if empty)")
	f.Uint64Var(&c.seed, "seed", 0, "Random seed")
}

func (c *renderCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	m, err := loadMap(c.inputPath, c.encoding)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	fg, err := loadRuleset(c.fgRuleset)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	bg, err := loadRuleset(c.bgRuleset)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	layers := renderLayers(fg, bg)
	if len(layers) == 0 {
		log.Println("no tileset given, use -fg and/or -bg")
		return subcommands.ExitFailure
	}

	rooms := m.Rooms
	if c.roomName != "" {
		room, ok := m.Room(c.roomName)
		if !ok {
			log.Printf("room not found: %q", c.roomName)
			return subcommands.ExitFailure
		}
		rooms = []mapdata.Room{*room}
	}

	if err := validatePattern(c.outputPath); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	out := &outputs{pattern: c.outputPath, writers: make(map[string]*bufio.Writer)}
	defer out.Close()

	bar := progressbar.NewOptions(len(rooms)*len(layers), progressbar.OptionSetWriter(os.Stderr), progressbar.OptionShowCount())

	unresolved := 0
	for i := range rooms {
		room := &rooms[i]
		for _, lr := range layers {
			rendered := renderRoom(room, lr, c.seed)
			if err := rendered.Err(); err != nil {
				log.Printf("room %q %v: %v", room.Name, lr.layer, err)
			}
			unresolved += len(rendered.Unresolved)

			w, err := out.writer(room.Name, lr.layer)
			if err != nil {
				log.Println(err)
				return subcommands.ExitFailure
			}
			for _, p := range rendered.Placements {
				fmt.Fprintf(w, "%s\t%v\t%d\t%d\t%c\t%d\t%d\t%s\n",
					room.Name, lr.layer, p.Cell.X, p.Cell.Y, p.Material, p.Tile.X, p.Tile.Y, p.Path)
			}
			bar.Add(1)
		}
	}

	bar.Finish()
	fmt.Fprintln(os.Stderr)

	if err := out.Close(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	if unresolved > 0 {
		log.Printf("%d cells matched no rule", unresolved)
	}

	return subcommands.ExitSuccess
}

// outputs opens placement files on demand, one per distinct formatted path.
type outputs struct {
	pattern string
	writers map[string]*bufio.Writer
	files   []*os.File
	closed  bool
}

func (o *outputs) writer(room string, layer mapdata.Layer) (io.Writer, error) {
	path := formatPattern(o.pattern, room, layer)
	if w, ok := o.writers[path]; ok {
		return w, nil
	}

	var w *bufio.Writer
	if path == "" {
		w = bufio.NewWriter(os.Stdout)
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, err
		}
		file, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		o.files = append(o.files, file)
		w = bufio.NewWriter(file)
	}
	o.writers[path] = w
	return w, nil
}

func (o *outputs) Close() error {
	if o.closed {
		return nil
	}
	o.closed = true

	var errs []error
	for _, w := range o.writers {
		errs = append(errs, w.Flush())
	}
	for _, file := range o.files {
		errs = append(errs, file.Close())
	}
	return errors.Join(errs...)
}
