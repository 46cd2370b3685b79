package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"
)

type roomsCmd struct {
	inputPath string
	encoding  string
}

func (c *roomsCmd) Name() string     { return "rooms" }
func (c *roomsCmd) Synopsis() string { return "list rooms of a map file" }
func (c *roomsCmd) Usage() string {
	return "maputils rooms -i <path> [-e <encoding>]\n"
}
func (c *roomsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input map file path")
	f.StringVar(&c.encoding, "e", "", "String length encoding (u16, uvarint)")
}

func (c *roomsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	m, err := loadMap(c.inputPath, c.encoding)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s: %d rooms, %d fillers\n", m.Package, len(m.Rooms), len(m.Fillers))
	for _, r := range m.Rooms {
		b := r.Bounds
		w, h := r.GridSize()
		fmt.Printf("%-16s %6d %6d %4dx%-4d tiles=%dx%d entities=%d triggers=%d\n",
			r.Name, b.X, b.Y, b.Width, b.Height, w, h, len(r.Entities), len(r.Triggers))
	}

	return subcommands.ExitSuccess
}
