package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"github.com/katalvlaran/floodfill/imageio"
)

var (
	errMissingInput    = errors.New("floodfill: at least one input image is required")
	errBadEngine       = errors.New("floodfill: engine must be \"scanline\" or \"pixel\"")
	errBadJobs         = errors.New("floodfill: -jobs must be >= 1")
	errBadThreshold    = errors.New("floodfill: -threshold must be in [0,255]")
	errDuplicateOutput = errors.New("floodfill: inputs map to the same output file")
)

// Engine names accepted by -engine.
const (
	engineScanline = "scanline"
	enginePixel    = "pixel"
)

// config is the validated command line.
type config struct {
	col, row  int
	threshold uint8
	invert    bool
	engine    string
	outDir    string
	counts    bool
	format    imageio.Format
	jobs      int
	verbose   bool
	inputs    []string
}

// parseConfig parses args (without the program name). Usage and flag errors
// are written to stderr. flag.ErrHelp is returned unchanged for -h.
func parseConfig(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("floodfill", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: floodfill -x COL -y ROW [flags] IMAGE...")
		fs.PrintDefaults()
	}

	var (
		cfg       config
		threshold int
		format    string
	)
	fs.IntVar(&cfg.col, "x", 0, "seed column (0-based)")
	fs.IntVar(&cfg.row, "y", 0, "seed row (0-based)")
	fs.IntVar(&threshold, "threshold", 128, "luminance at or above which a pixel is blocked")
	fs.BoolVar(&cfg.invert, "invert", false, "treat dark pixels as blocked instead")
	fs.StringVar(&cfg.engine, "engine", engineScanline, "fill engine: scanline or pixel")
	fs.StringVar(&cfg.outDir, "outdir", ".", "directory for output images")
	fs.BoolVar(&cfg.counts, "counts", false, "also write a visit-count heat map")
	fs.StringVar(&format, "format", "png", "output format: png, bmp, tiff, gif or jpeg")
	fs.IntVar(&cfg.jobs, "jobs", runtime.NumCPU(), "images processed concurrently")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	cfg.inputs = fs.Args()

	switch {
	case len(cfg.inputs) == 0:
		return config{}, errMissingInput
	case cfg.engine != engineScanline && cfg.engine != enginePixel:
		return config{}, fmt.Errorf("%w: %q", errBadEngine, cfg.engine)
	case cfg.jobs < 1:
		return config{}, errBadJobs
	case threshold < 0 || threshold > 255:
		return config{}, errBadThreshold
	}
	cfg.threshold = uint8(threshold)

	f, err := imageio.ParseFormat(format)
	if err != nil {
		return config{}, err
	}
	cfg.format = f

	// Counts paths collide exactly when fill paths do.
	seen := make(map[string]string, len(cfg.inputs))
	for _, in := range cfg.inputs {
		fillPath, _ := outputPaths(cfg.outDir, in, cfg.format)
		if prev, ok := seen[fillPath]; ok {
			return config{}, fmt.Errorf("%w: %s and %s both write %s", errDuplicateOutput, prev, in, fillPath)
		}
		seen[fillPath] = in
	}

	return cfg, nil
}
