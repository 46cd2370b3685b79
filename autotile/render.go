package autotile

import (
	"encoding/binary"
	"errors"
	"hash/fnv"
	"slices"

	"github.com/eak1mov/go-libmaps/tile"
)

// Layer is the result of autotiling a whole grid.
type Layer struct {
	Placements []Placement
	// Unresolved holds non-empty cells that matched no rule or whose rule has no tiles.
	Unresolved []tile.Cell
	// Missing holds cells whose material has no tileset.
	Missing []Placement
}

// Err joins one TilesetNotFoundError per distinct missing material.
func (l *Layer) Err() error {
	var materials []byte
	for _, p := range l.Missing {
		if !slices.Contains(materials, p.Material) {
			materials = append(materials, p.Material)
		}
	}
	slices.Sort(materials)

	var errs []error
	for _, m := range materials {
		errs = append(errs, &TilesetNotFoundError{Material: m})
	}
	return errors.Join(errs...)
}

// RenderGrid autotiles every cell of g in row-major order, drawing from rng
// in that order.
func RenderGrid(g *tile.Grid[byte], rs *Ruleset, rng Chooser) *Layer {
	layer := &Layer{}
	for cell, material := range g.Cells() {
		if material == tile.Empty {
			continue
		}
		p, ok, err := rs.Choose(g, cell.X, cell.Y, rng)
		switch {
		case err != nil:
			layer.Missing = append(layer.Missing, Placement{Cell: cell, Material: material})
		case !ok:
			layer.Unresolved = append(layer.Unresolved, cell)
		default:
			layer.Placements = append(layer.Placements, p)
		}
	}
	return layer
}

// RoomSeed derives a per-room seed so rooms render independently of order.
func RoomSeed(seed uint64, room string) uint64 {
	h := fnv.New64a()
	h.Write(binary.LittleEndian.AppendUint64(nil, seed))
	h.Write([]byte(room))
	return h.Sum64()
}
