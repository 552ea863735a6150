package pixelfill_test

import (
	"testing"

	"github.com/katalvlaran/floodfill/pixelfill"
	"github.com/katalvlaran/floodfill/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *raster.Mask {
	t.Helper()
	m, err := raster.ParseMask(s)
	require.NoError(t, err)
	return m
}

// TestFill_Errors verifies nil and mismatched inputs are rejected.
func TestFill_Errors(t *testing.T) {
	_, err := pixelfill.Fill(0, 0, nil, nil)
	assert.ErrorIs(t, err, pixelfill.ErrNilMask)

	m := mustParse(t, "...\n...")
	c, err := raster.NewCounts(2, 3)
	require.NoError(t, err)
	_, err = pixelfill.Fill(0, 0, m, c)
	assert.ErrorIs(t, err, pixelfill.ErrShapeMismatch)
}

// TestFill_Wall checks that a full vertical wall stops the fill.
func TestFill_Wall(t *testing.T) {
	m := mustParse(t, `
		..#..
		..#..
		..#..
	`)
	n, err := pixelfill.Fill(0, 0, m, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "###..\n###..\n###..\n", m.String())
}

// TestFill_CountsRevisitBoundary shows the per-pixel fill probing the
// same wall cell from several sides.
func TestFill_CountsRevisitBoundary(t *testing.T) {
	m := mustParse(t, `
		...
		.#.
		...
	`)
	c, err := raster.NewCounts(3, 3)
	require.NoError(t, err)

	n, err := pixelfill.Fill(0, 0, m, c)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, uint32(4), c.At(1, 1), "centre post is probed from all four sides")
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			assert.GreaterOrEqual(t, c.At(col, row), uint32(1))
		}
	}
}

// TestFill_BlockedAndOutside covers the two no-op outcomes.
func TestFill_BlockedAndOutside(t *testing.T) {
	m := mustParse(t, "#.\n..")
	c, _ := raster.NewCounts(2, 2)

	n, err := pixelfill.Fill(0, 0, m, c)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, uint32(1), c.At(0, 0))
	assert.Equal(t, uint64(1), c.Total())

	n, err = pixelfill.Fill(5, 0, m, c)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "#.\n..\n", m.String())
}

// TestReachable leaves the input untouched and excludes pre-blocked cells.
func TestReachable(t *testing.T) {
	m := mustParse(t, `
		.#.
		.#.
		##.
	`)
	r := pixelfill.Reachable(0, 0, m)
	require.NotNil(t, r)
	assert.Equal(t, "#..\n#..\n...\n", r.String())
	assert.Equal(t, ".#.\n.#.\n##.\n", m.String())

	empty := pixelfill.Reachable(1, 0, m)
	assert.Zero(t, empty.CountTrue())
	assert.Nil(t, pixelfill.Reachable(0, 0, nil))
}
