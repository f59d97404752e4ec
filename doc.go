// Package texwrap predicts the pixels a conformant texturing unit produces
// when sampling a procedural test texture at arbitrary integer coordinates.
//
// # Overview
//
// texwrap is the ground truth for texture wrap-mode conformance sweeps.
// Given a texture target, size, wrap mode, filter class, border ring flag
// and optional channel swizzle, it returns the exact 8-bit RGBA value a
// driver must produce for any coordinate, including coordinates far outside
// the texture.
//
// # Quick Start
//
//	img, err := texwrap.BuildImage(texwrap.Target2D, 8, false)
//	if err != nil {
//		return err
//	}
//	smp := texwrap.NewSampler(img)
//	res := smp.Sample(texwrap.SampleRequest{
//		Target: texwrap.Target2D,
//		Size:   8,
//		Wrap:   texwrap.Repeat,
//		Filter: gputypes.FilterModeNearest,
//		Coord:  texwrap.Coord{-1, 0},
//	})
//	// res.Pixel is the quantized cyan corner.
//
// # Sweeps
//
// [Sweep] evaluates many configurations in parallel against a [PixelSource]
// that reads back real rendered pixels, and compares each probe with
// [Probe] using a per-format tolerance from [DefaultTolerance].
//
// # Architecture
//
//   - internal/address: wrap modes, targets and coordinate resolution
//   - internal/teximage: procedural texture images and PNG previews
//   - internal/color: palette, swizzles and the shared quantization rule
//   - internal/cache: build-once image cache
//   - internal/parallel: sweep worker pool
//
// # Thread Safety
//
// Images are immutable once built and samplers are pure, so sampling is
// safe from any number of goroutines.
package texwrap
