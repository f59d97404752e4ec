package color

import (
	"math"

	"github.com/gogpu/gputypes"
)

// quantizeScale is slightly above 255 so that every exact byte fraction
// b/255 lands inside [b, b+1) despite float rounding.
const quantizeScale = 255.1

// dequantLUT maps a byte back to the float channel value it encodes.
var dequantLUT [256]float64

func init() {
	for i := range dequantLUT {
		dequantLUT[i] = float64(i) / 255.0
	}
}

// Quantize converts one channel to a byte with floor(v*255.1), clamped to
// [0, 255]. NaN maps to 0.
func Quantize(v float64) uint8 {
	q := math.Floor(v * quantizeScale)
	if !(q > 0) {
		return 0
	}
	if q >= 255 {
		return 255
	}
	return uint8(q)
}

// Dequantize returns the float channel value a byte encodes.
func Dequantize(b uint8) float64 {
	return dequantLUT[b]
}

// QuantizeColor quantizes every channel of c.
func QuantizeColor(c gputypes.Color) Pixel {
	return Pixel{Quantize(c.R), Quantize(c.G), Quantize(c.B), Quantize(c.A)}
}

// DequantizePixel converts a pixel back to float channels.
func DequantizePixel(p Pixel) gputypes.Color {
	return gputypes.NewColor(Dequantize(p[0]), Dequantize(p[1]), Dequantize(p[2]), Dequantize(p[3]))
}
