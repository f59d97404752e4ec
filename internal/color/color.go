// Package color provides the fixed palette, channel swizzles and the single
// 8-bit quantization rule shared by the sampling oracle and its comparator.
package color

import "github.com/gogpu/gputypes"

// Pixel is an 8-bit RGBA value as read back from a framebuffer.
type Pixel [4]uint8

// Channels returns the components of c in RGBA order.
func Channels(c gputypes.Color) [4]float64 {
	return [4]float64{c.R, c.G, c.B, c.A}
}

// FromChannels builds a color from components in RGBA order.
func FromChannels(ch [4]float64) gputypes.Color {
	return gputypes.NewColor(ch[0], ch[1], ch[2], ch[3])
}

// Palette colors of the procedural test texture.
var (
	// Red marks the all-zero interior corner.
	Red = gputypes.NewColor(1, 0, 0, 0.5)

	// Cyan marks the corner that is maximal on axis 0 only.
	Cyan = gputypes.NewColor(0, 1, 1, 0.5)

	// Blue marks the corner that is maximal on axis 1 only.
	Blue = gputypes.NewColor(0, 0, 1, 1)

	// Orange marks the corner that is maximal on axes 0 and 1.
	Orange = gputypes.NewColor(1, 0.6, 0.3, 0.5)

	// White is the even checkerboard texel.
	White = gputypes.ColorWhite

	// Black is the odd checkerboard texel. Its alpha is zero.
	Black = gputypes.ColorTransparent

	// Border is both the border-ring texel color and the sampler border
	// color.
	Border = gputypes.NewColor(0.1, 0.9, 0.5, 0.8)
)

// Lerp mixes the RGB components of a toward b by t. Alpha is taken from a.
func Lerp(a, b gputypes.Color, t float64) gputypes.Color {
	return gputypes.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A,
	}
}
