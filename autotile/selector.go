package autotile

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/eak1mov/go-libmaps/tile"
)

var ErrTilesetNotFound = errors.New("tileset not found")

// TilesetNotFoundError is returned for a non-empty material with no declared tileset.
type TilesetNotFoundError struct {
	Material byte
}

func (e *TilesetNotFoundError) Error() string {
	return fmt.Sprintf("%v: %q", ErrTilesetNotFound, e.Material)
}

func (e *TilesetNotFoundError) Is(target error) bool {
	return target == ErrTilesetNotFound
}

// Chooser picks a uniform integer in [0, n). *rand.Rand satisfies it.
type Chooser interface {
	IntN(n int) int
}

// NewRand returns a deterministic PCG-backed source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Placement is the tile chosen for one grid cell.
type Placement struct {
	Cell     tile.Cell
	Material byte
	Tile     Coord
	Path     string
}

// Select returns the candidate tiles of the first matching rule at (x, y).
// An empty cell, a cell outside the grid or a cell no rule matches yields nil.
func (rs *Ruleset) Select(g *tile.Grid[byte], x, y int) ([]Coord, error) {
	material := g.Get(x, y, tile.Empty)
	if material == tile.Empty {
		return nil, nil
	}
	ts, ok := rs.tilesets[material]
	if !ok {
		return nil, &TilesetNotFoundError{Material: material}
	}
	rule, ok := ts.Match(g, x, y)
	if !ok {
		return nil, nil
	}
	return rule.Tiles, nil
}

// Choose picks one candidate at (x, y) using rng. The boolean is false when
// the cell is empty or nothing could be chosen.
func (rs *Ruleset) Choose(g *tile.Grid[byte], x, y int, rng Chooser) (Placement, bool, error) {
	tiles, err := rs.Select(g, x, y)
	if err != nil || len(tiles) == 0 {
		return Placement{}, false, err
	}
	material := g.Get(x, y, tile.Empty)
	return Placement{
		Cell:     tile.Cell{X: x, Y: y},
		Material: material,
		Tile:     tiles[rng.IntN(len(tiles))],
		Path:     rs.tilesets[material].Path,
	}, true, nil
}
