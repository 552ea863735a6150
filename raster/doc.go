// Package raster holds the two grids a flood fill works on: a binary Mask of
// blocked/background cells and a parallel Counts grid of visit counters.
//
// What:
//
//   - Mask wraps a W×H boolean buffer; true means "blocked or already filled",
//     false means "background, fillable".
//   - Counts wraps a W×H uint32 buffer of per-cell inspection counters.
//   - Both are stored column-major (index = col*H + row), so a vertical run
//     of one column is a contiguous slice.
//
// Why:
//
//   - Scanline fills walk columns; column-major storage turns each walk into
//     a linear memory scan.
//   - Keeping counts in a separate, same-shaped grid lets callers opt in to
//     diagnostics without touching the mask.
//
// Complexity:
//
//   - NewMask / NewCounts:     O(W×H) time and memory.
//   - At / Set / Inc / Column: O(1), no bounds re-check beyond Go's own.
//   - ParseMask / String:      O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height below 1.
//   - ErrEmptyGrid: row-major input has no rows or no columns.
//   - ErrNonRectangular: row-major input rows have differing lengths.
//   - ErrBadRune: ParseMask met a rune other than '#' or '.'.
package raster
