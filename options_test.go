package texwrap

import (
	"log/slog"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestDefaultSweepOptions(t *testing.T) {
	o := defaultSweepOptions()

	if o.workers != 0 {
		t.Errorf("workers = %d, want 0", o.workers)
	}
	if o.margin != -1 {
		t.Errorf("margin = %d, want -1", o.margin)
	}
	if o.format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("format = %v, want RGBA8Unorm", o.format)
	}
	if o.tolerance == nil {
		t.Error("tolerance is nil")
	}
	if o.maxFailures != 100 {
		t.Errorf("maxFailures = %d, want 100", o.maxFailures)
	}
	if o.caps != AllCapabilities() {
		t.Errorf("caps = %+v, want all", o.caps)
	}
	if o.images != nil || o.logger != nil {
		t.Error("images and logger should default to nil")
	}
}

func TestSweepOptions_Apply(t *testing.T) {
	images := NewImageSet(4)
	logger := slog.New(slog.DiscardHandler)
	fixed := func(gputypes.TextureFormat, gputypes.FilterMode) uint32 { return 7 }

	o := defaultSweepOptions()
	for _, opt := range []SweepOption{
		WithWorkers(3),
		WithMargin(2),
		WithFormat(gputypes.TextureFormatRGBA8UnormSrgb),
		WithTolerance(fixed),
		WithMaxFailures(5),
		WithCapabilities(Capabilities{}),
		WithImageSet(images),
		WithLogger(logger),
	} {
		opt(&o)
	}

	if o.workers != 3 || o.margin != 2 || o.maxFailures != 5 {
		t.Errorf("workers/margin/maxFailures = %d/%d/%d", o.workers, o.margin, o.maxFailures)
	}
	if o.format != gputypes.TextureFormatRGBA8UnormSrgb {
		t.Errorf("format = %v", o.format)
	}
	if got := o.tolerance(gputypes.TextureFormatRGBA8Unorm, gputypes.FilterModeNearest); got != 7 {
		t.Errorf("tolerance() = %d, want 7", got)
	}
	if o.caps != (Capabilities{}) {
		t.Errorf("caps = %+v, want zero", o.caps)
	}
	if o.images != images || o.logger != logger {
		t.Error("images or logger not applied")
	}
}

func TestWithTolerance_NilKeepsDefault(t *testing.T) {
	o := defaultSweepOptions()
	WithTolerance(nil)(&o)
	if o.tolerance == nil {
		t.Fatal("nil tolerance replaced the default")
	}
	if got, want := o.tolerance(gputypes.TextureFormatRGBA8Unorm, gputypes.FilterModeNearest),
		DefaultTolerance(gputypes.TextureFormatRGBA8Unorm, gputypes.FilterModeNearest); got != want {
		t.Errorf("tolerance() = %d, want %d", got, want)
	}
}
