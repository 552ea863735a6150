package raster

// NewMask allocates a w×h Mask with every cell set to background (false).
// Returns ErrInvalidDimensions if w < 1 or h < 1.
// Complexity: O(W×H) time and memory.
func NewMask(w, h int) (*Mask, error) {
	if w < 1 || h < 1 {
		return nil, ErrInvalidDimensions
	}

	return &Mask{w: w, h: h, data: make([]bool, w*h)}, nil
}

// MaskFromRows builds a Mask from row-major input, rows[y][x].
// The input is copied; later changes to rows do not affect the Mask.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func MaskFromRows(rows [][]bool) (*Mask, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	m := &Mask{w: w, h: h, data: make([]bool, w*h)}
	// Transpose into column-major order
	for y, row := range rows {
		for x, v := range row {
			m.data[x*h+y] = v
		}
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Mask) Width() int { return m.w }

// Height returns the number of rows.
func (m *Mask) Height() int { return m.h }

// InBounds reports whether (col,row) lies within the grid.
// Complexity: O(1).
func (m *Mask) InBounds(col, row int) bool {
	return col >= 0 && col < m.w && row >= 0 && row < m.h
}

// At returns the cell at (col,row). Indices are not validated.
func (m *Mask) At(col, row int) bool {
	return m.data[col*m.h+row]
}

// Set assigns the cell at (col,row). Indices are not validated.
func (m *Mask) Set(col, row int, v bool) {
	m.data[col*m.h+row] = v
}

// Column returns column col as a slice of length Height that aliases the
// Mask's storage: writes through it are writes to the Mask.
func (m *Mask) Column(col int) []bool {
	off := col * m.h
	return m.data[off : off+m.h : off+m.h]
}

// Clone returns a deep copy of the Mask.
// Complexity: O(W×H).
func (m *Mask) Clone() *Mask {
	data := make([]bool, len(m.data))
	copy(data, m.data)

	return &Mask{w: m.w, h: m.h, data: data}
}

// Equal reports whether o has the same shape and cells as m.
func (m *Mask) Equal(o *Mask) bool {
	if o == nil || m.w != o.w || m.h != o.h {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// CountTrue returns the number of blocked cells.
func (m *Mask) CountTrue() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}

	return n
}

// Rows returns a row-major copy of the Mask, rows[y][x].
func (m *Mask) Rows() [][]bool {
	rows := make([][]bool, m.h)
	for y := range rows {
		rows[y] = make([]bool, m.w)
		for x := 0; x < m.w; x++ {
			rows[y][x] = m.data[x*m.h+y]
		}
	}

	return rows
}

// NewCounts allocates a w×h Counts with every counter at zero.
// Returns ErrInvalidDimensions if w < 1 or h < 1.
func NewCounts(w, h int) (*Counts, error) {
	if w < 1 || h < 1 {
		return nil, ErrInvalidDimensions
	}

	return &Counts{w: w, h: h, data: make([]uint32, w*h)}, nil
}

// Width returns the number of columns.
func (c *Counts) Width() int { return c.w }

// Height returns the number of rows.
func (c *Counts) Height() int { return c.h }

// At returns the counter at (col,row). Indices are not validated.
func (c *Counts) At(col, row int) uint32 {
	return c.data[col*c.h+row]
}

// Inc increments the counter at (col,row). Indices are not validated.
func (c *Counts) Inc(col, row int) {
	c.data[col*c.h+row]++
}

// Column returns column col as a slice aliasing the Counts' storage.
func (c *Counts) Column(col int) []uint32 {
	off := col * c.h
	return c.data[off : off+c.h : off+c.h]
}

// Clone returns a deep copy of the Counts.
func (c *Counts) Clone() *Counts {
	data := make([]uint32, len(c.data))
	copy(data, c.data)

	return &Counts{w: c.w, h: c.h, data: data}
}

// Total returns the sum of all counters.
func (c *Counts) Total() uint64 {
	var sum uint64
	for _, v := range c.data {
		sum += uint64(v)
	}

	return sum
}

// Max returns the largest counter.
func (c *Counts) Max() uint32 {
	var hi uint32
	for _, v := range c.data {
		if v > hi {
			hi = v
		}
	}

	return hi
}

// Reset sets every counter back to zero.
func (c *Counts) Reset() {
	clear(c.data)
}

// SameShape reports whether m and c have identical dimensions.
// A nil argument never matches.
func SameShape(m *Mask, c *Counts) bool {
	if m == nil || c == nil {
		return false
	}

	return m.w == c.w && m.h == c.h
}
