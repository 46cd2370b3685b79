package autotile

import (
	"strings"
)

type MaskKind uint8

const (
	MaskPattern MaskKind = iota
	// MaskCenter always matches.
	MaskCenter
	// MaskPadding matches when a cell two steps away in a cardinal direction is absent.
	MaskPadding
)

// Segment is one cell of a 3×3 mask pattern.
type Segment uint8

const (
	Any Segment = iota
	Present
	Absent
)

// Mask decides whether a rule applies at a cell. Pattern is row-major with
// the cell itself at index 4.
type Mask struct {
	Kind    MaskKind
	Pattern [9]Segment
}

// ParseMask parses "center", "padding" or a "-"-delimited 3×3 pattern of
// '1', '0' and 'x'. Text that is not 3 rows of 3 characters yields an
// all-wildcard pattern; unknown characters are wildcards.
func ParseMask(text string) Mask {
	switch text {
	case "center":
		return Mask{Kind: MaskCenter}
	case "padding":
		return Mask{Kind: MaskPadding}
	}

	var mask Mask
	rows := strings.Split(text, "-")
	if len(rows) != 3 {
		return mask
	}
	for _, row := range rows {
		if len(row) != 3 {
			return mask
		}
	}
	for y, row := range rows {
		for x := range 3 {
			switch row[x] {
			case '1':
				mask.Pattern[y*3+x] = Present
			case '0':
				mask.Pattern[y*3+x] = Absent
			}
		}
	}
	return mask
}

func (m Mask) String() string {
	switch m.Kind {
	case MaskCenter:
		return "center"
	case MaskPadding:
		return "padding"
	}
	var sb strings.Builder
	for i, seg := range m.Pattern {
		if i > 0 && i%3 == 0 {
			sb.WriteByte('-')
		}
		switch seg {
		case Present:
			sb.WriteByte('1')
		case Absent:
			sb.WriteByte('0')
		default:
			sb.WriteByte('x')
		}
	}
	return sb.String()
}
