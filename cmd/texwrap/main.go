// Command texwrap renders the expected result of a texture wrap-mode
// configuration as a PNG, or self-checks a full configuration sweep.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gogpu/gputypes"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/texwrap"
)

func main() {
	var (
		target  = flag.String("target", "2D", "texture target: 1D, 2D, 3D or rectangle")
		size    = flag.Int("size", 8, "texels per axis")
		wrap    = flag.String("wrap", "Repeat", "wrap mode name or GL enum, e.g. GL_MIRROR_CLAMP_EXT")
		filter  = flag.String("filter", "nearest", "filter class: nearest or linear")
		border  = flag.Bool("border", false, "store an explicit border ring")
		swizzle = flag.Bool("swizzle", false, "apply the test channel swizzle")
		margin  = flag.Int("margin", -1, "texels probed outside the texture on each side (negative: one size)")
		scale   = flag.Int("scale", 16, "preview upscale factor")
		output  = flag.String("output", "texwrap.png", "preview output file")
		sweep   = flag.Bool("sweep", false, "sweep every valid configuration of target and size against the oracle")
		workers = flag.Int("workers", 0, "sweep workers (0: GOMAXPROCS)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	texwrap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	tgt, err := texwrap.ParseTarget(*target)
	if err != nil {
		log.Fatal(err)
	}

	if *sweep {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runSweep(ctx, tgt, *size, *margin, *workers); err != nil {
			stop()
			log.Fatal(err)
		}
		return
	}

	mode, err := texwrap.ParseWrapMode(*wrap)
	if err != nil {
		log.Fatal(err)
	}
	fm, err := parseFilter(*filter)
	if err != nil {
		log.Fatal(err)
	}

	cfg := texwrap.Config{
		Target:     tgt,
		Size:       *size,
		Wrap:       mode,
		Filter:     fm,
		BorderRing: *border,
	}
	if *swizzle {
		cfg.Swizzle = texwrap.SwizzleTest
	}

	grid, err := texwrap.Preview(cfg, *margin)
	if err != nil {
		log.Fatalf("Failed to render %v: %v", cfg, err)
	}
	if err := grid.SavePNG(*output, *scale); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%v saved to %s (%dx%d texels)\n", cfg, *output, grid.Width, grid.Height)
}

func parseFilter(s string) (gputypes.FilterMode, error) {
	switch strings.ToLower(s) {
	case "nearest", "gl_nearest":
		return gputypes.FilterModeNearest, nil
	case "linear", "gl_linear":
		return gputypes.FilterModeLinear, nil
	default:
		return gputypes.FilterModeUndefined, fmt.Errorf("unknown filter %q", s)
	}
}

func runSweep(ctx context.Context, target texwrap.TextureTarget, size, margin, workers int) error {
	cfgs := texwrap.Configs(target, size, texwrap.AllCapabilities())
	images := texwrap.NewImageSet(texwrap.DefaultImageCapacity)

	report, err := texwrap.Sweep(ctx, cfgs, texwrap.OracleSource{Images: images},
		texwrap.WithImageSet(images),
		texwrap.WithMargin(margin),
		texwrap.WithWorkers(workers),
	)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	for _, cr := range report.Configs {
		status := "pass"
		if !cr.Passed() {
			status = "FAIL"
		}
		p.Printf("%-4s %v: %d probes, %d failed\n", status, cr.Config, cr.Probes, cr.Failed)
	}
	p.Printf("%d configurations, %d probes, %d failed in %v\n",
		len(report.Configs), report.Probes, report.Failed, report.Elapsed)

	if !report.Passed() {
		return fmt.Errorf("%d probes failed", report.Failed)
	}
	return nil
}
