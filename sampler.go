package texwrap

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/texwrap/internal/address"
	"github.com/gogpu/texwrap/internal/color"
)

// SampleRequest describes one probe of the oracle.
type SampleRequest struct {
	Target     TextureTarget
	Size       int
	Wrap       WrapMode
	Filter     gputypes.FilterMode
	BorderRing bool
	Swizzle    Swizzle
	Coord      Coord
}

// Key returns the image key the request samples from.
func (r SampleRequest) Key() ImageKey {
	return ImageKey{Target: r.Target, Size: r.Size, BorderRing: r.BorderRing}
}

// SampleResult is the oracle's prediction for one request.
type SampleResult struct {
	// Color is the swizzled color before quantization.
	Color gputypes.Color

	// Pixel is Color quantized to 8 bits per channel.
	Pixel Pixel

	// BorderFactor is the weight with which Color was mixed toward the
	// border color.
	BorderFactor float64

	// Resolved is the in-range interior coordinate that was looked up.
	// It is not meaningful when BorderFactor is 1.
	Resolved Coord
}

// Sampler predicts sampled colors from one immutable TextureImage.
//
// Sample is a pure function of its request; a Sampler is safe for
// concurrent use.
type Sampler struct {
	img *TextureImage
}

// NewSampler binds a sampler to an image.
func NewSampler(img *TextureImage) *Sampler {
	if img == nil {
		panic("texwrap: NewSampler with nil image")
	}
	return &Sampler{img: img}
}

// Image returns the bound image.
func (s *Sampler) Image() *TextureImage {
	return s.img
}

// Sample returns the color a conformant texturing unit produces for req.
//
// The request's target, size and border ring must match the bound image;
// a mismatch is a caller bug and panics.
func (s *Sampler) Sample(req SampleRequest) SampleResult {
	if req.Key() != s.img.Key() {
		panic(fmt.Sprintf("texwrap: request for %v sampled from image %v", req.Key(), s.img.Key()))
	}

	axes := req.Target.Axes()
	var coord Coord
	copy(coord[:axes], req.Coord[:axes])

	res := address.Resolve(coord, axes, req.Size, req.Wrap, req.Filter)

	var c gputypes.Color
	switch {
	case res.BorderFactor >= 1:
		c = BorderColor
	case res.BorderFactor > 0:
		c = color.Lerp(s.img.Interior(res.Coord), BorderColor, res.BorderFactor)
	default:
		c = s.img.Interior(res.Coord)
	}

	c = req.Swizzle.Apply(c)

	return SampleResult{
		Color:        c,
		Pixel:        color.QuantizeColor(c),
		BorderFactor: res.BorderFactor,
		Resolved:     res.Coord,
	}
}

// Sample builds the image for req and samples it once. Sweeps should build
// the image once through an ImageSet or NewSampler instead.
func Sample(req SampleRequest) (SampleResult, error) {
	img, err := BuildImage(req.Target, req.Size, req.BorderRing)
	if err != nil {
		return SampleResult{}, err
	}
	return NewSampler(img).Sample(req), nil
}
