package texwrap

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/texwrap/internal/parallel"
)

// PixelSource supplies the observed pixel for a request, typically by
// reading back a frame rendered by a real driver.
//
// Pixel is called concurrently from sweep workers.
type PixelSource interface {
	Pixel(ctx context.Context, req SampleRequest) (Pixel, error)
}

// PixelSourceFunc adapts a function to PixelSource.
type PixelSourceFunc func(ctx context.Context, req SampleRequest) (Pixel, error)

// Pixel calls f.
func (f PixelSourceFunc) Pixel(ctx context.Context, req SampleRequest) (Pixel, error) {
	return f(ctx, req)
}

// OracleSource answers every request with the oracle's own prediction.
// Sweeping against it checks the sweep machinery end to end. With a nil
// Images every call builds its image from scratch.
type OracleSource struct {
	Images *ImageSet
}

// Pixel implements PixelSource.
func (s OracleSource) Pixel(_ context.Context, req SampleRequest) (Pixel, error) {
	images := s.Images
	if images == nil {
		images = NewImageSet(0)
	}
	res, err := images.Sample(req)
	if err != nil {
		return Pixel{}, err
	}
	return res.Pixel, nil
}

// ConfigResult summarizes the probes of one configuration.
type ConfigResult struct {
	Config    Config
	Tolerance uint32
	Probes    int
	Failed    int
}

// Passed reports whether every probe of the configuration passed.
func (r ConfigResult) Passed() bool {
	return r.Failed == 0
}

// Report is the outcome of a sweep.
type Report struct {
	Configs  []ConfigResult
	Probes   int
	Failed   int
	Failures []*ProbeError
	Elapsed  time.Duration
}

// Passed reports whether every probe passed.
func (r *Report) Passed() bool {
	return r.Failed == 0
}

// sweepBatch is the unit of parallel work: one configuration and one value
// of its outermost active axis.
type sweepBatch struct {
	cfg   int
	outer int
}

// Sweep probes every configuration over the coordinate window
// [-margin, size+margin) on each active axis, comparing the oracle against
// src. Configurations are validated first; a source error aborts the sweep.
func Sweep(ctx context.Context, cfgs []Config, src PixelSource, opts ...SweepOption) (*Report, error) {
	o := defaultSweepOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := loggerOr(o.logger)
	images := o.images
	if images == nil {
		images = NewImageSet(DefaultImageCapacity)
	}

	start := time.Now()

	report := &Report{Configs: make([]ConfigResult, len(cfgs))}
	samplers := make([]*Sampler, len(cfgs))
	var batches []sweepBatch

	for i, cfg := range cfgs {
		if err := cfg.Validate(o.caps); err != nil {
			return nil, fmt.Errorf("texwrap: config %d (%v): %w", i, cfg, err)
		}
		smp, err := images.Sampler(cfg.Key())
		if err != nil {
			return nil, fmt.Errorf("texwrap: config %d (%v): %w", i, cfg, err)
		}
		samplers[i] = smp
		report.Configs[i] = ConfigResult{Config: cfg, Tolerance: o.tolerance(o.format, cfg.Filter)}

		lo, hi := window(cfg.Size, o.margin)
		for outer := lo; outer < hi; outer++ {
			batches = append(batches, sweepBatch{cfg: i, outer: outer})
		}
		log.Debug("texwrap: sweep config", "index", i, "config", cfg.String())
	}

	var mu sync.Mutex
	tasks := make([]parallel.Task, len(batches))
	for i, b := range batches {
		cfg := report.Configs[b.cfg].Config
		tol := report.Configs[b.cfg].Tolerance
		smp := samplers[b.cfg]
		tasks[i] = func(ctx context.Context) error {
			probes, failures, err := runBatch(ctx, cfg, tol, smp, b.outer, o.margin, src)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			cr := &report.Configs[b.cfg]
			cr.Probes += probes
			cr.Failed += len(failures)
			report.Probes += probes
			report.Failed += len(failures)
			for _, f := range failures {
				if len(report.Failures) < o.maxFailures {
					report.Failures = append(report.Failures, f)
				}
				log.Warn("texwrap: probe failed", "error", f.Error())
			}
			return nil
		}
	}

	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	if err := pool.Run(ctx, tasks); err != nil {
		return nil, err
	}

	report.Elapsed = time.Since(start)
	log.Info("texwrap: sweep finished",
		slog.Int("configs", len(cfgs)),
		slog.Int("probes", report.Probes),
		slog.Int("failed", report.Failed),
		slog.Duration("elapsed", report.Elapsed))

	return report, nil
}

// window returns the half-open probe range of one axis.
func window(size, margin int) (lo, hi int) {
	if margin < 0 {
		margin = size
	}
	return -margin, size + margin
}

// runBatch probes every coordinate whose outermost active axis equals outer.
// It reads nothing shared with other batches except the immutable sampler.
func runBatch(ctx context.Context, cfg Config, tol uint32, smp *Sampler, outer, margin int, src PixelSource) (int, []*ProbeError, error) {
	axes := cfg.Target.Axes()
	lo, hi := window(cfg.Size, margin)

	var coord Coord
	coord[axes-1] = outer

	probes := 0
	var failures []*ProbeError

	var visit func(axis int) error
	visit = func(axis int) error {
		if axis < 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			req := cfg.Request(coord)
			expected := smp.Sample(req).Pixel
			observed, err := src.Pixel(ctx, req)
			if err != nil {
				return fmt.Errorf("texwrap: pixel source at %v: %w", coord[:axes], err)
			}
			probes++
			if !Probe(observed, expected, tol) {
				failures = append(failures, &ProbeError{
					Request:   req,
					Expected:  expected,
					Observed:  observed,
					Tolerance: tol,
				})
			}
			return nil
		}
		for c := lo; c < hi; c++ {
			coord[axis] = c
			if err := visit(axis - 1); err != nil {
				return err
			}
		}
		return nil
	}

	if err := visit(axes - 2); err != nil {
		return 0, nil, err
	}
	return probes, failures, nil
}
