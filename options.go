package texwrap

import (
	"log/slog"

	"github.com/gogpu/gputypes"
)

// SweepOption configures a Sweep.
//
// Example:
//
//	report, err := texwrap.Sweep(ctx, cfgs, src,
//	    texwrap.WithWorkers(8),
//	    texwrap.WithFormat(gputypes.TextureFormatRGBA8Unorm),
//	)
type SweepOption func(*sweepOptions)

type sweepOptions struct {
	workers     int
	margin      int
	format      gputypes.TextureFormat
	tolerance   ToleranceFunc
	maxFailures int
	caps        Capabilities
	images      *ImageSet
	logger      *slog.Logger
}

func defaultSweepOptions() sweepOptions {
	return sweepOptions{
		workers:     0,  // GOMAXPROCS
		margin:      -1, // one texture size on each side
		format:      gputypes.TextureFormatRGBA8Unorm,
		tolerance:   DefaultTolerance,
		maxFailures: 100,
		caps:        AllCapabilities(),
	}
}

// WithWorkers sets the number of worker goroutines. Zero or negative uses
// GOMAXPROCS.
func WithWorkers(n int) SweepOption {
	return func(o *sweepOptions) {
		o.workers = n
	}
}

// WithMargin sets how many texels outside [0, size) are probed on each side
// of every active axis. A negative margin probes one texture size.
func WithMargin(m int) SweepOption {
	return func(o *sweepOptions) {
		o.margin = m
	}
}

// WithFormat sets the internal format of the texture under test, which
// selects the tolerance.
func WithFormat(f gputypes.TextureFormat) SweepOption {
	return func(o *sweepOptions) {
		o.format = f
	}
}

// WithTolerance replaces DefaultTolerance.
func WithTolerance(fn ToleranceFunc) SweepOption {
	return func(o *sweepOptions) {
		if fn != nil {
			o.tolerance = fn
		}
	}
}

// WithMaxFailures caps how many ProbeErrors the report retains. Failures
// beyond the cap are still counted. Zero or negative keeps none.
func WithMaxFailures(n int) SweepOption {
	return func(o *sweepOptions) {
		o.maxFailures = n
	}
}

// WithCapabilities sets the capabilities configurations are validated
// against. The default enables everything.
func WithCapabilities(caps Capabilities) SweepOption {
	return func(o *sweepOptions) {
		o.caps = caps
	}
}

// WithImageSet shares an image set between sweeps.
func WithImageSet(s *ImageSet) SweepOption {
	return func(o *sweepOptions) {
		o.images = s
	}
}

// WithLogger overrides the package logger for one sweep.
func WithLogger(l *slog.Logger) SweepOption {
	return func(o *sweepOptions) {
		o.logger = l
	}
}
