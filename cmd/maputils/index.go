package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/eak1mov/go-libmaps/catalog"
	"github.com/eak1mov/go-libmaps/mapdata"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type indexCmd struct {
	encoding   string
	fgRuleset  string
	bgRuleset  string
	outputPath string
	seed       uint64
}

func (c *indexCmd) Name() string     { return "index" }
func (c *indexCmd) Synopsis() string { return "build an sqlite catalog of rendered maps" }
func (c *indexCmd) Usage() string {
	return "maputils index -o <path> [-fg <path> -bg <path> -seed <n> -e <encoding>] <map file>...\n"
}
func (c *indexCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputPath, "o", "", "Output catalog file path")
	f.StringVar(&c.encoding, "e", "", "String length encoding (u16, uvarint)")
	f.StringVar(&c.fgRuleset, "fg", "", "Foreground tileset XML path (solids layer)")
	f.StringVar(&c.bgRuleset, "bg", "", "Background tileset XML path (bg layer)")
	f.Uint64Var(&c.seed, "seed", 0, "Random seed")
}

func (c *indexCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() == 0 {
		log.Println("no map files given")
		return subcommands.ExitUsageError
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

	metadata := map[string]string{
		"fg":   c.fgRuleset,
		"bg":   c.bgRuleset,
		"seed": fmt.Sprint(c.seed),
	}
	writer, err := catalog.NewWriter(c.outputPath, catalog.WithMetadata(metadata), catalog.WithLogger(slog.Default()))
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer writer.Close()

	bar := progressbar.NewOptions(-1, progressbar.OptionShowIts(), progressbar.OptionShowCount())

	for _, filePath := range f.Args() {
		m, err := loadMap(filePath, c.encoding)
		if err != nil {
			log.Printf("%s: %v", filePath, err)
			return subcommands.ExitFailure
		}

		mapID, err := writer.WriteMap(m)
		if err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}

		for i := range m.Rooms {
			room := &m.Rooms[i]
			if err := c.indexRoom(writer, mapID, room, layers); err != nil {
				log.Println(err)
				return subcommands.ExitFailure
			}
			bar.Add(1)
		}
	}

	bar.Finish()
	fmt.Println()

	if err := writer.Finalize(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

func (c *indexCmd) indexRoom(writer *catalog.Writer, mapID int64, room *mapdata.Room, layers []layerRuleset) error {
	for _, lr := range layers {
		rendered := renderRoom(room, lr, c.seed)
		if err := rendered.Err(); err != nil {
			log.Printf("room %q %v: %v", room.Name, lr.layer, err)
		}
		if err := writer.WriteLayer(mapID, room, lr.layer, rendered); err != nil {
			return fmt.Errorf("room %q %v: %w", room.Name, lr.layer, err)
		}
	}
	return nil
}
