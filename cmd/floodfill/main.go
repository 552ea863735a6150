// Command floodfill thresholds images into binary masks, fills the
// background region around a seed and writes the filled mask (and,
// optionally, a heat map of per-pixel visit counts).
//
// Usage:
//
//	floodfill -x 10 -y 20 -counts -outdir out scan1.png scan2.tiff
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/floodfill/scanfill"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stderr))
}

// realMain returns the process exit code: 0 on success, 1 on a processing
// error, 2 on a usage error.
func realMain(args []string, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	if cfg.verbose {
		scanfill.SetLogger(log)
		defer scanfill.SetLogger(nil)
	}

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("floodfill failed", slog.Any("err", err))
		return 1
	}

	return 0
}
