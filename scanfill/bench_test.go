package scanfill_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/floodfill/pixelfill"
	"github.com/katalvlaran/floodfill/raster"
	"github.com/katalvlaran/floodfill/scanfill"
)

// benchMask returns a deterministic n×n mask with ~30% blocked cells and a
// clear centre column so the seed always opens onto a large region.
func benchMask(n int) *raster.Mask {
	rng := rand.New(rand.NewSource(42))
	m, _ := raster.NewMask(n, n)
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			m.Set(col, row, col != n/2 && rng.Intn(10) < 3)
		}
	}
	return m
}

// BenchmarkFill_Open1000 measures the best case: a 1000×1000 background grid.
// Complexity: O(W×H), one inspection per cell.
func BenchmarkFill_Open1000(b *testing.B) {
	const n = 1000
	src, _ := raster.NewMask(n, n)
	counts, _ := raster.NewCounts(n, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		work := src.Clone()
		counts.Reset()
		b.StartTimer()

		_, _ = scanfill.Fill(n/2, n/2, work, counts)
	}
}

// BenchmarkFill_Random1000 measures a cluttered 1000×1000 grid.
func BenchmarkFill_Random1000(b *testing.B) {
	const n = 1000
	src := benchMask(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		work := src.Clone()
		b.StartTimer()

		_, _ = scanfill.Fill(n/2, n/2, work, nil)
	}
}

// BenchmarkPixelFill_Random1000 is the per-pixel BFS baseline on the same grid.
func BenchmarkPixelFill_Random1000(b *testing.B) {
	const n = 1000
	src := benchMask(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		work := src.Clone()
		b.StartTimer()

		_, _ = pixelfill.Fill(n/2, n/2, work, nil)
	}
}
