package tile

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/google/hilbert"
)

// ErrCellOutOfRange is returned for cells and codes outside the grid.
var ErrCellOutOfRange = errors.New("cell out of range")

func curveSide(width, height int) int {
	side := max(width, height, 1)
	return 1 << bits.Len(uint(side-1))
}

func inGrid(c Cell, width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// EncodeCell maps a cell of a width×height grid to its position along a
// Hilbert curve covering the smallest enclosing power-of-two square.
// Cells close in the grid get close codes.
func EncodeCell(c Cell, width, height int) (uint64, error) {
	if !inGrid(c, width, height) {
		return 0, fmt.Errorf("%w: %v in %dx%d", ErrCellOutOfRange, c, width, height)
	}
	h, err := hilbert.NewHilbert(curveSide(width, height))
	if err != nil {
		return 0, err
	}
	code, err := h.MapInverse(c.X, c.Y)
	if err != nil {
		return 0, err
	}
	return uint64(code), nil
}

// DecodeCell is the inverse of EncodeCell.
func DecodeCell(code uint64, width, height int) (Cell, error) {
	side := curveSide(width, height)
	if code >= uint64(side)*uint64(side) {
		return Cell{}, fmt.Errorf("%w: code %d in %dx%d", ErrCellOutOfRange, code, width, height)
	}
	h, err := hilbert.NewHilbert(side)
	if err != nil {
		return Cell{}, err
	}
	x, y, err := h.Map(int(code))
	if err != nil {
		return Cell{}, err
	}
	c := Cell{X: x, Y: y}
	if !inGrid(c, width, height) {
		return Cell{}, fmt.Errorf("%w: code %d in %dx%d", ErrCellOutOfRange, code, width, height)
	}
	return c, nil
}
