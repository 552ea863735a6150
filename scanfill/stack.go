package scanfill

// workItem is a pending scan range: rows [top, bottom] of the column next to
// col are filled, and col itself still has to be explored over that range.
// Items are immutable once pushed.
type workItem struct {
	top, bottom, col int
}

// workStack is a LIFO of work items backed by a slice.
type workStack []workItem

func (s *workStack) push(top, bottom, col int) {
	*s = append(*s, workItem{top: top, bottom: bottom, col: col})
}

// pop removes and returns the top item. The stack must not be empty.
func (s *workStack) pop() workItem {
	old := *s
	it := old[len(old)-1]
	*s = old[:len(old)-1]

	return it
}
