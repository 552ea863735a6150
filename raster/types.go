package raster

import "errors"

// Sentinel errors for raster construction.
var (
	// ErrInvalidDimensions indicates a requested width or height below 1.
	ErrInvalidDimensions = errors.New("raster: dimensions must be > 0")
	// ErrEmptyGrid indicates row-major input with no rows or no columns.
	ErrEmptyGrid = errors.New("raster: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrBadRune indicates an unexpected character in ASCII-art input.
	ErrBadRune = errors.New("raster: unexpected rune in mask text")
)

// Runes used by ParseMask and Mask.String.
const (
	BlockedRune    = '#'
	BackgroundRune = '.'
)

// Mask is a column-major W×H grid of booleans.
// true marks a blocked (or already filled) cell, false a background cell.
// The zero value is not usable; build one with NewMask, MaskFromRows or ParseMask.
type Mask struct {
	w, h int
	data []bool // len == w*h, data[col*h+row]
}

// Counts is a column-major W×H grid of visit counters, laid out exactly
// like Mask so the two can be walked in lockstep.
type Counts struct {
	w, h int
	data []uint32 // len == w*h, data[col*h+row]
}
