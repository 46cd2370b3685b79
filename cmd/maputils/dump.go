package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/eak1mov/go-libmaps/container"
	"github.com/google/subcommands"
)

type dumpCmd struct {
	inputPath string
	encoding  string
	maxDepth  int
}

func (c *dumpCmd) Name() string     { return "dump" }
func (c *dumpCmd) Synopsis() string { return "print the element tree of a map file" }
func (c *dumpCmd) Usage() string {
	return "maputils dump -i <path> [-e <encoding> -depth <n>]\n"
}
func (c *dumpCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input map file path")
	f.StringVar(&c.encoding, "e", "", "String length encoding (u16, uvarint)")
	f.IntVar(&c.maxDepth, "depth", -1, "Maximum depth to print (-1 for all)")
}

func (c *dumpCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	enc, err := parseEncoding(c.encoding)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	data, err := os.ReadFile(c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	doc, err := container.Decode(data, container.WithLengthEncoding(enc))
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	fmt.Fprintf(out, "package %q\n", doc.Package)
	doc.Root.Walk(func(el *container.Element, depth int) bool {
		fmt.Fprintf(out, "%s%s", strings.Repeat("  ", depth), el.Name)
		for _, name := range el.AttrNames() {
			fmt.Fprintf(out, " %s=%v", name, el.Attributes[name])
		}
		fmt.Fprintln(out)
		return c.maxDepth < 0 || depth < c.maxDepth
	})

	return subcommands.ExitSuccess
}
