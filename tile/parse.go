package tile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidIndex = errors.New("invalid tile index")

// ParseGrid builds a material grid from newline-separated rows.
// Short rows are padded with Empty, missing rows are filled with Empty, and
// rows or characters beyond the grid size are dropped.
func ParseGrid(width, height int, raw string) *Grid[byte] {
	g := NewGrid(width, height, Empty)
	y := 0
	for line := range strings.SplitSeq(raw, "\n") {
		if y >= g.Height {
			break
		}
		line = strings.TrimSuffix(line, "\r")
		copy(g.Row(y), line)
		y++
	}
	return g
}

// ParseIndices builds a sprite index grid from newline-separated rows of
// comma-separated integers. Missing or empty entries are -1.
func ParseIndices(width, height int, raw string) (*Grid[int], error) {
	g := NewGrid(width, height, -1)
	y := 0
	for line := range strings.SplitSeq(raw, "\n") {
		if y >= g.Height {
			break
		}
		line = strings.TrimSuffix(line, "\r")
		x := 0
		for field := range strings.SplitSeq(line, ",") {
			if x >= g.Width {
				break
			}
			field = strings.TrimSpace(field)
			if field != "" {
				v, err := strconv.Atoi(field)
				if err != nil {
					return nil, fmt.Errorf("%w: row %d column %d: %q", ErrInvalidIndex, y, x, field)
				}
				g.Set(x, y, v)
			}
			x++
		}
		y++
	}
	return g, nil
}

// Text formats a material grid back into newline-separated rows.
func Text(g *Grid[byte]) string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Height)
	for y := range g.Height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(g.Row(y))
	}
	return sb.String()
}
