package scanfill

import (
	"log/slog"

	"github.com/katalvlaran/floodfill/raster"
)

// Fill: stack-driven scanline flood fill
//
// Description:
//
//	Fill marks every background cell 4-connected to (seedCol, seedRow) as
//	blocked, in place, and adds one to counts for every cell inspection.
//	It runs to completion synchronously; mask and counts must not be used
//	by anyone else until it returns.
//
// Algorithm Outline:
//  1. Seed column: fill-column over [seedRow, seedRow]. Blocked seed → done.
//  2. Push the seed run for column+1 onto the right stack (unless at the
//     right edge) and sweep left from column-1 (unless at the left edge).
//  3. Until both stacks are empty: pop a work item (see PopOrder) and run
//     the sweep matching its stack.
//
// Inputs:
//   - seedCol, seedRow: 0-based seed; outside the grid → Stats{}, nil.
//   - mask:   mutated in place; only false→true transitions.
//   - counts: same shape as mask, or nil to skip visit counting.
//
// Complexity:
//
//	Time   = O(W×H)
//	Memory = O(pending work items), plus O(W×H) scratch when counts is nil
//
// Errors:
//   - ErrNilMask, ErrShapeMismatch, ErrOptionViolation before any mutation.
//   - ErrPendingLimit after a partial fill, when WithMaxPending is exceeded.
func Fill(seedCol, seedRow int, mask *raster.Mask, counts *raster.Counts, opts ...Option) (Stats, error) {
	if mask == nil {
		return Stats{}, ErrNilMask
	}
	if counts != nil && !raster.SameShape(mask, counts) {
		return Stats{}, ErrShapeMismatch
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Stats{}, o.err
	}

	log := Logger()
	if !mask.InBounds(seedCol, seedRow) {
		log.Debug("scanfill: seed outside grid",
			slog.Int("col", seedCol), slog.Int("row", seedRow),
			slog.Int("width", mask.Width()), slog.Int("height", mask.Height()))
		return Stats{}, nil
	}
	if counts == nil {
		// Counting is unconditional in the hot loop; discard into scratch.
		scratch, err := raster.NewCounts(mask.Width(), mask.Height())
		if err != nil {
			return Stats{}, err
		}
		counts = scratch
	}

	f := &filler{
		mask:       mask,
		counts:     counts,
		rowmax:     mask.Height() - 1,
		colmax:     mask.Width() - 1,
		onColumn:   o.OnColumn,
		maxPending: o.MaxPending,
	}
	log.Debug("scanfill: fill start",
		slog.Int("col", seedCol), slog.Int("row", seedRow),
		slog.Int("width", mask.Width()), slog.Int("height", mask.Height()),
		slog.String("order", o.PopOrder.String()))

	f.run(seedCol, seedRow, o.PopOrder)

	if f.err != nil {
		log.Warn("scanfill: fill aborted",
			slog.Int("filled", f.stats.Filled),
			slog.Int("max_pending", f.maxPending),
			slog.Any("err", f.err))
		return f.stats, f.err
	}
	log.Debug("scanfill: fill done",
		slog.Int("filled", f.stats.Filled),
		slog.Int("columns", f.stats.Columns),
		slog.Int("dead_ends", f.stats.DeadEnds),
		slog.Int("work_items", f.stats.WorkItems),
		slog.Int("max_pending", f.stats.MaxPending),
		slog.Uint64("visits", f.stats.Visits))

	return f.stats, nil
}

// filler is the state of one Fill call. prevtop/prevbottom is the run the
// current column is seeded from; top/bottom is the run fillColumn produced.
type filler struct {
	mask   *raster.Mask
	counts *raster.Counts

	rowmax, colmax int

	prevtop, prevbottom int
	top, bottom         int
	col                 int

	left, right workStack

	onColumn   func(col, top, bottom int)
	maxPending int

	stats Stats
	err   error
}

// run drives the sweeps from the seed until no work is left.
func (f *filler) run(seedCol, seedRow int, order PopOrder) {
	f.prevtop, f.prevbottom = seedRow, seedRow
	f.col = seedCol
	if !f.fillColumn() {
		return
	}
	f.prevtop, f.prevbottom = f.top, f.bottom

	if f.col < f.colmax {
		f.push(&f.right, f.top, f.bottom, f.col+1)
	}
	if f.col > 0 {
		f.col--
		f.fillLeft()
	}

	for f.err == nil {
		switch {
		case order == PopLarger && len(f.left) > len(f.right),
			order == PopRightFirst && len(f.right) == 0 && len(f.left) > 0:
			f.pop(&f.left)
			f.fillLeft()
		case len(f.right) > 0:
			f.pop(&f.right)
			f.fillRight()
		default:
			return
		}
	}
}

func (f *filler) push(s *workStack, top, bottom, col int) {
	s.push(top, bottom, col)
	f.stats.WorkItems++
	pending := len(f.left) + len(f.right)
	if pending > f.stats.MaxPending {
		f.stats.MaxPending = pending
	}
	if f.maxPending > 0 && pending > f.maxPending {
		f.err = ErrPendingLimit
	}
}

func (f *filler) pop(s *workStack) {
	it := s.pop()
	f.prevtop, f.prevbottom, f.col = it.top, it.bottom, it.col
}

// fillColumn fills the run of column f.col that touches row f.prevtop, or
// the first run below it that starts no lower than f.prevbottom. It reports
// false, leaving top/bottom untouched, when [prevtop, prevbottom] is blocked
// in this column. Fence cells just outside the run are counted, not filled.
func (f *filler) fillColumn() bool {
	data := f.mask.Column(f.col)
	cnt := f.counts.Column(f.col)
	var visits uint64
	filled := 0

	r := f.prevtop
	if data[r] {
		// blocked: look further down for an opening
		cnt[r]++
		visits++
		for r++; r <= f.prevbottom && data[r]; r++ {
			cnt[r]++
			visits++
		}
		if r > f.prevbottom {
			f.stats.Visits += visits
			f.stats.DeadEnds++
			return false
		}
		cnt[r]++
		visits++
		data[r] = true
		filled++
		f.top = r
	} else {
		// open: fill upward first
		cnt[r]++
		visits++
		data[r] = true
		filled++
		for r > 0 && !data[r-1] {
			r--
			data[r] = true
			cnt[r]++
			visits++
			filled++
		}
		if r > 0 {
			cnt[r-1]++
			visits++
		}
		f.top = r
		r = f.prevtop
	}

	for r < f.rowmax && !data[r+1] {
		r++
		data[r] = true
		cnt[r]++
		visits++
		filled++
	}
	if r < f.rowmax {
		cnt[r+1]++
		visits++
	}
	f.bottom = r

	f.stats.Visits += visits
	f.stats.Filled += filled
	f.stats.Columns++
	if f.onColumn != nil {
		f.onColumn(f.col, f.top, f.bottom)
	}

	return true
}

// fillLeft sweeps toward column 0. Ranges exposed in the column to the
// right go onto the right stack; the unexplored tail of the current seed
// range stays on the left stack.
func (f *filler) fillLeft() {
	for {
		if !f.fillColumn() {
			return
		}
		if f.prevtop > 1 && f.top < f.prevtop-1 {
			f.push(&f.right, f.top, f.prevtop-2, f.col+1)
		}
		if f.bottom > f.prevbottom+1 {
			f.push(&f.right, f.prevbottom+2, f.bottom, f.col+1)
		} else if f.prevbottom > 1 && f.bottom < f.prevbottom-1 {
			// starts on the run's own bottom row, unlike fillRight
			f.push(&f.left, f.bottom, f.prevbottom, f.col)
		}
		if f.err != nil || f.col == 0 {
			return
		}
		f.col--
		f.prevtop, f.prevbottom = f.top, f.bottom
	}
}

// fillRight mirrors fillLeft toward the last column.
func (f *filler) fillRight() {
	for {
		if !f.fillColumn() {
			return
		}
		if f.prevtop > 1 && f.top < f.prevtop-1 {
			f.push(&f.left, f.top, f.prevtop-2, f.col-1)
		}
		if f.bottom > f.prevbottom+1 {
			f.push(&f.left, f.prevbottom+2, f.bottom, f.col-1)
		} else if f.prevbottom > 1 && f.bottom < f.prevbottom-1 {
			f.push(&f.right, f.bottom+2, f.prevbottom, f.col)
		}
		if f.err != nil || f.col == f.colmax {
			return
		}
		f.col++
		f.prevtop, f.prevbottom = f.top, f.bottom
	}
}
