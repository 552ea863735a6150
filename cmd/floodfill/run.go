package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/floodfill/imageio"
	"github.com/katalvlaran/floodfill/pixelfill"
	"github.com/katalvlaran/floodfill/raster"
	"github.com/katalvlaran/floodfill/scanfill"
)

// fillFunc is the common shape of the two engines.
type fillFunc func(col, row int, mask *raster.Mask, counts *raster.Counts) (int, error)

func scanlineFill(col, row int, mask *raster.Mask, counts *raster.Counts) (int, error) {
	stats, err := scanfill.Fill(col, row, mask, counts)
	return stats.Filled, err
}

func engineFor(name string) fillFunc {
	if name == enginePixel {
		return pixelfill.Fill
	}
	return scanlineFill
}

// run processes every input concurrently, at most cfg.jobs at a time.
// Each fill owns its own mask and counts; nothing is shared between jobs.
func run(ctx context.Context, cfg config, log *slog.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.jobs)
	fill := engineFor(cfg.engine)

	for _, in := range cfg.inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return processOne(cfg, fill, in, log)
		})
	}

	return g.Wait()
}

// processOne loads one image, fills it and writes the results.
func processOne(cfg config, fill fillFunc, in string, log *slog.Logger) error {
	img, err := imageio.Load(in)
	if err != nil {
		return err
	}
	mask, err := imageio.ToMask(img, cfg.threshold, cfg.invert)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	counts, err := raster.NewCounts(mask.Width(), mask.Height())
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	if !mask.InBounds(cfg.col, cfg.row) {
		log.Warn("seed outside image, nothing filled",
			slog.String("input", in),
			slog.Int("x", cfg.col), slog.Int("y", cfg.row),
			slog.Int("width", mask.Width()), slog.Int("height", mask.Height()))
	}
	filled, err := fill(cfg.col, cfg.row, mask, counts)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	fillPath, countsPath := outputPaths(cfg.outDir, in, cfg.format)
	out, err := imageio.MaskImage(mask)
	if err != nil {
		return err
	}
	if err := imageio.Save(fillPath, out); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if cfg.counts {
		heat, err := imageio.CountsImage(counts)
		if err != nil {
			return err
		}
		if err := imageio.Save(countsPath, heat); err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
	}

	log.Info("filled",
		slog.String("input", in),
		slog.String("engine", cfg.engine),
		slog.Int("filled", filled),
		slog.Uint64("visits", counts.Total()),
		slog.Any("max_visits", counts.Max()),
		slog.String("output", fillPath))

	return nil
}

// outputPaths derives DIR/<base>.fill.<ext> and DIR/<base>.counts.<ext>.
func outputPaths(dir, in string, format imageio.Format) (fillPath, countsPath string) {
	base := filepath.Base(in)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	ext := string(format)

	return filepath.Join(dir, base+".fill."+ext), filepath.Join(dir, base+".counts."+ext)
}
