package raster

import (
	"fmt"
	"strings"
)

// ParseMask reads ASCII art into a Mask: one text line per row, BlockedRune
// ('#') for true and BackgroundRune ('.') for false. Blank lines and
// surrounding whitespace on each line are ignored, so raw string literals
// can be indented freely.
//
// Example:
//
//	m, err := raster.ParseMask(`
//	    ..#..
//	    ..#..
//	    .....
//	`)
func ParseMask(s string) (*Mask, error) {
	var rows [][]bool
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for i, r := range line {
			switch r {
			case BlockedRune:
				row = append(row, true)
			case BackgroundRune:
				row = append(row, false)
			default:
				return nil, fmt.Errorf("row %d, byte %d (%q): %w", len(rows), i, r, ErrBadRune)
			}
		}
		rows = append(rows, row)
	}

	return MaskFromRows(rows)
}

// String renders the Mask in the ParseMask format, one line per row,
// each line terminated by '\n'.
func (m *Mask) String() string {
	var sb strings.Builder
	sb.Grow((m.w + 1) * m.h)
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.data[x*m.h+y] {
				sb.WriteByte(BlockedRune)
			} else {
				sb.WriteByte(BackgroundRune)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
