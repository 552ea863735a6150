// Package scanfill implements a 4-connected scanline flood fill over a
// column-major binary raster, driven by two explicit work stacks instead of
// recursion.
//
// 🚀 How it works
//
//	The fill never grows a region pixel by pixel. It fills a whole vertical
//	run of one column, then steps to the neighbouring column using that run
//	as the seed range:
//
//	  1. fill-column: starting at the top of the previous run, either fill up
//	     and down from an open cell, or search down (within the previous run)
//	     for the first open cell and fill down from it. No opening means a
//	     dead end for this sweep.
//	  2. expansion: if the new run pokes out above or below the previous one,
//	     the exposed part of the column we came from still needs a look; a
//	     work item is pushed onto the stack of the opposite direction. If the
//	     new run stops short of the previous one's bottom, the remainder is
//	     pushed for this same column and direction.
//	  3. sweep: fill-left / fill-right repeat 1–2 column by column until a
//	     dead end or the grid edge.
//
//	The driver fills the seed column, sweeps left, then keeps popping work
//	items (from the larger stack by default) until both stacks are empty.
//
// ✨ Properties
//
//   - Monotonic: cells only go false→true.
//   - Complete and sound for 4-connectivity.
//   - Fixed point: refilling from the same seed changes nothing.
//   - Interior cells are inspected once; fence cells just outside a run a
//     small bounded number of times. Every inspection bumps the cell's
//     visit counter.
//
// ⚙️ Usage:
//
//	mask, _ := raster.ParseMask(art)
//	counts, _ := raster.NewCounts(mask.Width(), mask.Height())
//	stats, err := scanfill.Fill(col, row, mask, counts)
//
// A seed outside the grid is a no-op, not an error.
//
// Performance:
//
//   - Time:   O(W×H) cell inspections.
//   - Memory: O(open boundary ranges) for the stacks, O(1) call depth.
//
// Errors:
//
//   - ErrNilMask:         mask is nil.
//   - ErrShapeMismatch:   counts does not have the mask's dimensions.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrPendingLimit:    WithMaxPending was exceeded; the mask is partially filled.
package scanfill
