// Package pixelfill is the textbook flood fill: breadth-first search over
// individual pixels with 4-connectivity.
//
// It fills exactly the same region as scanfill.Fill but inspects boundary
// pixels once per neighbour, so its visit counts show the redundant work a
// scanline fill avoids. It also serves as the oracle scanfill is tested
// against.
//
// Complexity:
//
//   - Fill:      O(W×H×4) time, O(W×H) queue in the worst case.
//   - Reachable: O(W×H×4) time, O(W×H) memory.
package pixelfill

import (
	"errors"

	"github.com/katalvlaran/floodfill/raster"
)

// Sentinel errors for pixelfill operations.
var (
	// ErrNilMask indicates a nil mask was passed.
	ErrNilMask = errors.New("pixelfill: mask is nil")
	// ErrShapeMismatch indicates counts and mask dimensions differ.
	ErrShapeMismatch = errors.New("pixelfill: counts shape differs from mask shape")
)

// offsets4 lists the N, E, S, W neighbours as (dcol, drow).
var offsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Fill marks every background cell 4-connected to (seedCol, seedRow) as
// blocked, in place, and returns how many cells it flipped.
// counts may be nil; otherwise every inspection of a cell (the seed once,
// then each neighbour probe) increments that cell's counter.
// A seed outside the grid is a no-op.
func Fill(seedCol, seedRow int, mask *raster.Mask, counts *raster.Counts) (int, error) {
	if mask == nil {
		return 0, ErrNilMask
	}
	if counts != nil && !raster.SameShape(mask, counts) {
		return 0, ErrShapeMismatch
	}
	if !mask.InBounds(seedCol, seedRow) {
		return 0, nil
	}

	visit := func(col, row int) {
		if counts != nil {
			counts.Inc(col, row)
		}
	}

	visit(seedCol, seedRow)
	if mask.At(seedCol, seedRow) {
		return 0, nil
	}
	mask.Set(seedCol, seedRow, true)
	filled := 1

	h := mask.Height()
	queue := []int{seedCol*h + seedRow}
	for qi := 0; qi < len(queue); qi++ {
		ucol, urow := queue[qi]/h, queue[qi]%h
		for _, d := range offsets4 {
			vcol, vrow := ucol+d[0], urow+d[1]
			if !mask.InBounds(vcol, vrow) {
				continue
			}
			visit(vcol, vrow)
			if mask.At(vcol, vrow) {
				continue
			}
			mask.Set(vcol, vrow, true)
			filled++
			queue = append(queue, vcol*h+vrow)
		}
	}

	return filled, nil
}

// Reachable returns a new mask, the same shape as mask, that is true exactly
// on the background cells 4-connected to (seedCol, seedRow). mask is not
// modified. The result is all false when the seed is blocked or outside the
// grid. Returns nil for a nil mask.
func Reachable(seedCol, seedRow int, mask *raster.Mask) *raster.Mask {
	if mask == nil {
		return nil
	}
	work := mask.Clone()
	_, _ = Fill(seedCol, seedRow, work, nil)

	out, _ := raster.NewMask(mask.Width(), mask.Height())
	for col := 0; col < mask.Width(); col++ {
		before, after, dst := mask.Column(col), work.Column(col), out.Column(col)
		for row := range dst {
			dst[row] = after[row] && !before[row]
		}
	}

	return out
}
