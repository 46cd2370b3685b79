// Package autotile picks sprite tiles for material grids from neighbour masks.
//
// A Ruleset holds, per material character, an ordered list of rules. The
// first rule whose mask matches a cell wins, and one of its candidate tiles
// is picked with a caller-supplied random source.
package autotile

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/eak1mov/go-libmaps/tile"
)

var (
	ErrUnknownCopy       = errors.New("copy of undeclared tileset")
	ErrInvalidTiles      = errors.New("invalid tile coordinates")
	ErrInvalidDefinition = errors.New("invalid tileset definition")
)

// Definition is a tileset as declared in the tileset markup.
type Definition struct {
	ID      byte
	Copy    byte // 0 when the tileset copies nothing
	Path    string
	Ignores string
	Rules   []RuleDef
}

type RuleDef struct {
	Mask  string
	Tiles string
}

// Coord is a tile position inside the tileset atlas image.
type Coord struct {
	X int
	Y int
}

type Rule struct {
	Mask  Mask
	Tiles []Coord
}

// Ignores is the set of other materials treated as absent next to a tileset.
type Ignores struct {
	All   bool
	Chars []byte
}

// ParseIgnores parses "" (none), "*" (all) or a comma-separated character list.
func ParseIgnores(text string) Ignores {
	var ignores Ignores
	for item := range strings.SplitSeq(text, ",") {
		item = strings.TrimSpace(item)
		switch {
		case item == "*":
			ignores.All = true
		case item != "":
			ignores.Chars = append(ignores.Chars, item[0])
		}
	}
	return ignores
}

func (ig Ignores) Contains(c byte) bool {
	return ig.All || slices.Contains(ig.Chars, c)
}

type Tileset struct {
	ID      byte
	Path    string
	Ignores Ignores
	Rules   []Rule
}

// Ruleset is immutable after construction and safe for concurrent use.
type Ruleset struct {
	tilesets map[byte]*Tileset
}

// NewRuleset flattens definitions into per-material rule lists. A copied
// tileset's rules are prepended to the copying tileset's own rules; the
// source must be declared earlier.
func NewRuleset(defs []Definition) (*Ruleset, error) {
	rs := &Ruleset{tilesets: make(map[byte]*Tileset, len(defs))}
	for _, def := range defs {
		if def.ID == 0 {
			return nil, fmt.Errorf("%w: empty id", ErrInvalidDefinition)
		}
		ts := &Tileset{
			ID:      def.ID,
			Path:    def.Path,
			Ignores: ParseIgnores(def.Ignores),
		}
		if def.Copy != 0 {
			src, ok := rs.tilesets[def.Copy]
			if !ok {
				return nil, fmt.Errorf("%w: %q copies %q", ErrUnknownCopy, def.ID, def.Copy)
			}
			ts.Rules = slices.Clone(src.Rules)
		}
		for i, rd := range def.Rules {
			tiles, err := ParseTiles(rd.Tiles)
			if err != nil {
				return nil, fmt.Errorf("tileset %q rule %d: %w", def.ID, i, err)
			}
			ts.Rules = append(ts.Rules, Rule{Mask: ParseMask(rd.Mask), Tiles: tiles})
		}
		rs.tilesets[def.ID] = ts
	}
	return rs, nil
}

func (rs *Ruleset) Tileset(id byte) (*Tileset, bool) {
	ts, ok := rs.tilesets[id]
	return ts, ok
}

// IDs returns the declared material characters in ascending order.
func (rs *Ruleset) IDs() []byte {
	ids := make([]byte, 0, len(rs.tilesets))
	for id := range rs.tilesets {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ParseTiles parses "x,y; x,y; ..." atlas coordinates.
func ParseTiles(text string) ([]Coord, error) {
	var tiles []Coord
	for item := range strings.SplitSeq(text, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		xs, ys, ok := strings.Cut(item, ",")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTiles, item)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil || x < 0 || y < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTiles, item)
		}
		tiles = append(tiles, Coord{X: x, Y: y})
	}
	return tiles, nil
}

// absent reports whether neighbor counts as no tile next to center.
func (ts *Tileset) absent(center, neighbor byte) bool {
	return neighbor == tile.Empty || (neighbor != center && ts.Ignores.Contains(neighbor))
}

func (ts *Tileset) matches(m Mask, g *tile.Grid[byte], x, y int) bool {
	center := g.Get(x, y, tile.Empty)
	switch m.Kind {
	case MaskCenter:
		return true
	case MaskPadding:
		return ts.absent(center, g.Get(x-2, y, center)) ||
			ts.absent(center, g.Get(x+2, y, center)) ||
			ts.absent(center, g.Get(x, y-2, center)) ||
			ts.absent(center, g.Get(x, y+2, center))
	}

	block := g.Neighbors(x, y, center)
	for i, seg := range m.Pattern {
		switch seg {
		case Present:
			if ts.absent(center, block[i]) {
				return false
			}
		case Absent:
			if !ts.absent(center, block[i]) {
				return false
			}
		}
	}
	return true
}

// Match returns the first rule whose mask matches at (x, y).
func (ts *Tileset) Match(g *tile.Grid[byte], x, y int) (*Rule, bool) {
	for i := range ts.Rules {
		if ts.matches(ts.Rules[i].Mask, g, x, y) {
			return &ts.Rules[i], true
		}
	}
	return nil, false
}
