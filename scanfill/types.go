// Package scanfill defines options, statistics and sentinel errors for the
// scanline flood fill.
package scanfill

import (
	"errors"
	"fmt"
)

// Sentinel errors for Fill.
var (
	// ErrNilMask is returned when a nil mask is passed to Fill.
	ErrNilMask = errors.New("scanfill: mask is nil")

	// ErrShapeMismatch is returned when counts and mask dimensions differ.
	ErrShapeMismatch = errors.New("scanfill: counts shape differs from mask shape")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("scanfill: invalid option supplied")

	// ErrPendingLimit is returned when the work stacks outgrow WithMaxPending.
	ErrPendingLimit = errors.New("scanfill: pending work limit exceeded")
)

// PopOrder selects which work stack the driver drains next.
type PopOrder int

const (
	// PopLarger pops from whichever stack holds more work items, preferring
	// the right stack on ties. It keeps the two stacks balanced.
	PopLarger PopOrder = iota

	// PopRightFirst drains the right stack completely before touching the left.
	PopRightFirst
)

// String returns the order name.
func (o PopOrder) String() string {
	switch o {
	case PopLarger:
		return "larger"
	case PopRightFirst:
		return "right-first"
	default:
		return fmt.Sprintf("PopOrder(%d)", int(o))
	}
}

// Option configures Fill via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for one Fill call.
type Options struct {
	// OnColumn is called after every successful fill-column with the
	// column index and the inclusive row range just filled.
	OnColumn func(col, top, bottom int)

	// PopOrder picks the next stack to drain. Any order yields the same
	// filled mask; only visit counts and stack depth differ.
	PopOrder PopOrder

	// MaxPending, if > 0, caps the number of work items held by both stacks
	// together. 0 means no cap.
	MaxPending int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no OnColumn hook
//   - PopOrder = PopLarger
//   - MaxPending = 0 (unbounded)
func DefaultOptions() Options {
	return Options{
		OnColumn:   nil,
		PopOrder:   PopLarger,
		MaxPending: 0,
	}
}

// WithOnColumn registers a hook run after each filled vertical run.
func WithOnColumn(fn func(col, top, bottom int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnColumn = fn
		}
	}
}

// WithPopOrder sets the stack selection policy.
// Unknown values are an ErrOptionViolation.
func WithPopOrder(order PopOrder) Option {
	return func(o *Options) {
		switch order {
		case PopLarger, PopRightFirst:
			o.PopOrder = order
		default:
			o.err = fmt.Errorf("%w: unknown pop order %v", ErrOptionViolation, order)
		}
	}
}

// WithMaxPending caps the combined size of the work stacks.
//
//	n > 0: Fill stops with ErrPendingLimit once more than n items are pending
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPending(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPending cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPending = n
	}
}

// Stats summarises the work done by one Fill call.
type Stats struct {
	// Filled is the number of cells flipped from background to blocked.
	Filled int
	// Columns is the number of successful fill-column steps.
	Columns int
	// DeadEnds is the number of fill-column steps that found no opening.
	DeadEnds int
	// WorkItems is the number of work items pushed onto either stack.
	WorkItems int
	// MaxPending is the high-water mark of both stacks together.
	MaxPending int
	// Visits is the total number of visit-count increments.
	Visits uint64
}
