// Package floodfill fills connected regions of binary rasters, fast.
//
// 🚀 What is floodfill?
//
//	A small, zero-magic toolkit built around one algorithm: a stack-driven
//	scanline flood fill over a column-major boolean grid. Instead of growing
//	a region pixel by pixel, it fills whole vertical runs at once and keeps
//	two explicit work stacks (one per horizontal direction) in place of
//	recursion. In the common case every filled pixel is visited exactly once.
//
// ✨ Why floodfill?
//
//   - Cache-friendly – vertical runs walk contiguous memory
//   - Bounded memory – O(open boundary ranges), not O(region size)
//   - Diagnosable – every cell inspection is counted, so you can see the work
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under a handful of subpackages:
//
//	raster/       - Mask (blocked/background) and Counts (visit counts) grids
//	scanfill/     - the scanline engine: Fill, options, stats
//	pixelfill/    - naive per-pixel BFS fill, kept as a reference and baseline
//	imageio/      - image files ↔ Mask/Counts (PNG, GIF, JPEG, BMP, TIFF)
//	cmd/floodfill - command-line front end
//
// Quick ASCII example (seed at column 0, row 0):
//
//	before     after
//	..#..      #####
//	..#..      #####
//	.....      #####
//
// the gap under the wall lets the fill reach the right half, so every
// background cell ends up blocked.
//
//	go get github.com/katalvlaran/floodfill
package floodfill
