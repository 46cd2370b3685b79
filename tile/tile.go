// Package tile provides the dense tile grids that room layers are parsed into.
package tile

const (
	// Size is the edge length of one tile in pixels.
	Size = 8

	// Empty is the material character of a cell with no tile.
	Empty byte = '0'
)

// Cell addresses a grid position in tile units.
type Cell struct {
	X int
	Y int
}

// Grid is a dense row-major matrix with fixed dimensions.
// Reads outside the grid return a caller-supplied default.
type Grid[T any] struct {
	Width  int
	Height int
	cells  []T
}

// NewGrid returns a width×height grid with every cell set to fill.
func NewGrid[T any](width, height int, fill T) *Grid[T] {
	width, height = max(width, 0), max(height, 0)
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{Width: width, Height: height, cells: cells}
}

func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Get returns the cell at (x, y), or def when it lies outside the grid.
func (g *Grid[T]) Get(x, y int, def T) T {
	if !g.InBounds(x, y) {
		return def
	}
	return g.cells[y*g.Width+x]
}

// Set stores v at (x, y) and reports whether the cell exists.
func (g *Grid[T]) Set(x, y int, v T) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.Width+x] = v
	return true
}

// Row returns row y backed by the grid storage.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.Height {
		return nil
	}
	return g.cells[y*g.Width : (y+1)*g.Width]
}

func (g *Grid[T]) Len() int {
	return len(g.cells)
}
