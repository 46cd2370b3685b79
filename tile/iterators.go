package tile

import "iter"

// Cells returns an iterator over all cells in row-major order.
func (g *Grid[T]) Cells() iter.Seq2[Cell, T] {
	return func(yield func(Cell, T) bool) {
		for i, v := range g.cells {
			if !yield(Cell{X: i % g.Width, Y: i / g.Width}, v) {
				return
			}
		}
	}
}

// Neighbors returns the 3×3 block around (x, y) in row-major order,
// substituting def for cells outside the grid.
func (g *Grid[T]) Neighbors(x, y int, def T) [9]T {
	var block [9]T
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			block[(dy+1)*3+dx+1] = g.Get(x+dx, y+dy, def)
		}
	}
	return block
}
