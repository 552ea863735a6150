package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/floodfill/imageio"
	"github.com/katalvlaran/floodfill/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeMask saves art as a black/white image in dir and returns its path.
func writeMask(t *testing.T, dir, name, art string) string {
	t.Helper()
	m, err := raster.ParseMask(art)
	require.NoError(t, err)
	img, err := imageio.MaskImage(m)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, imageio.Save(path, img))
	return path
}

func loadMask(t *testing.T, path string) *raster.Mask {
	t.Helper()
	img, err := imageio.Load(path)
	require.NoError(t, err)
	m, err := imageio.ToMask(img, 128, false)
	require.NoError(t, err)
	return m
}

// TestParseConfig_Errors covers each validation failure.
func TestParseConfig_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		err  error
	}{
		{"NoInput", []string{"-x", "1"}, errMissingInput},
		{"BadEngine", []string{"-engine", "magic", "a.png"}, errBadEngine},
		{"BadJobs", []string{"-jobs", "0", "a.png"}, errBadJobs},
		{"BadThreshold", []string{"-threshold", "300", "a.png"}, errBadThreshold},
		{"BadFormat", []string{"-format", "webp", "a.png"}, imageio.ErrUnknownFormat},
		{"Help", []string{"-h"}, flag.ErrHelp},
		{"DuplicateOutput", []string{"a/scan.png", "b/scan.png"}, errDuplicateOutput},
		{"SameInputTwice", []string{"a.png", "a.png"}, errDuplicateOutput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig(tc.args, &bytes.Buffer{})
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParseConfig_Defaults checks defaults and positional inputs.
func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig([]string{"-x", "3", "-y", "4", "a.png", "b.bmp"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.col)
	assert.Equal(t, 4, cfg.row)
	assert.Equal(t, uint8(128), cfg.threshold)
	assert.Equal(t, engineScanline, cfg.engine)
	assert.Equal(t, imageio.PNG, cfg.format)
	assert.GreaterOrEqual(t, cfg.jobs, 1)
	assert.Equal(t, []string{"a.png", "b.bmp"}, cfg.inputs)
}

// TestOutputPaths checks the derived file names.
func TestOutputPaths(t *testing.T) {
	fill, counts := outputPaths("out", "/data/scan.v2.tiff", imageio.BMP)
	assert.Equal(t, filepath.Join("out", "scan.v2.fill.bmp"), fill)
	assert.Equal(t, filepath.Join("out", "scan.v2.counts.bmp"), counts)
}

// TestRealMain_Batch runs both engines over two images end to end and
// checks that they agree.
func TestRealMain_Batch(t *testing.T) {
	in := t.TempDir()
	a := writeMask(t, in, "a.png", `
		..#..
		..#..
		.....
		..#..
	`)
	b := writeMask(t, in, "b.bmp", `
		.#...
		.#...
		.#...
		.#...
	`)

	for _, engine := range []string{engineScanline, enginePixel} {
		t.Run(engine, func(t *testing.T) {
			out := t.TempDir()
			var stderr bytes.Buffer
			code := realMain([]string{
				"-x", "0", "-y", "0", "-engine", engine, "-counts", "-outdir", out, "-jobs", "2", a, b,
			}, &stderr)
			require.Equal(t, 0, code, stderr.String())

			assert.Equal(t, "#####\n#####\n#####\n#####\n", loadMask(t, filepath.Join(out, "a.fill.png")).String())
			assert.Equal(t, "##...\n##...\n##...\n##...\n", loadMask(t, filepath.Join(out, "b.fill.png")).String())

			_, err := os.Stat(filepath.Join(out, "a.counts.png"))
			assert.NoError(t, err)
			assert.Contains(t, stderr.String(), "filled")
		})
	}
}

// TestRealMain_ExitCodes covers usage and processing failures.
func TestRealMain_ExitCodes(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 2, realMain([]string{"-engine", "magic", "a.png"}, &stderr))
	assert.Equal(t, 0, realMain([]string{"-h"}, &stderr))

	missing := filepath.Join(t.TempDir(), "missing.png")
	assert.Equal(t, 1, realMain([]string{"-outdir", t.TempDir(), missing}, &stderr))
}

// TestRealMain_DuplicateOutput refuses inputs whose results would
// overwrite each other and writes nothing.
func TestRealMain_DuplicateOutput(t *testing.T) {
	in := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(in, "a"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(in, "b"), 0o755))
	a := writeMask(t, in, filepath.Join("a", "scan.png"), "..#..\n..#..")
	b := writeMask(t, in, filepath.Join("b", "scan.png"), ".#...\n.#...")
	out := t.TempDir()
	var stderr bytes.Buffer

	code := realMain([]string{"-outdir", out, "-jobs", "2", a, b}, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "same output file")

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// TestRealMain_SeedOutside writes the input unchanged and warns.
func TestRealMain_SeedOutside(t *testing.T) {
	in := t.TempDir()
	a := writeMask(t, in, "a.png", "..#\n...")
	out := t.TempDir()
	var stderr bytes.Buffer

	code := realMain([]string{"-x", "9", "-y", "0", "-v", "-outdir", out, a}, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "..#\n...\n", loadMask(t, filepath.Join(out, "a.fill.png")).String())
	assert.Contains(t, stderr.String(), "seed outside image")
	assert.Contains(t, stderr.String(), "scanfill: seed outside grid")
}
