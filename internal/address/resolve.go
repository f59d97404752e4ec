package address

import "github.com/gogpu/gputypes"

// linearBorderWeights is the border-color contribution of a linear filter
// sampling at a texel center when k axes fall outside the domain: half a
// tap on an edge, three quarters in a corner, seven eighths in a 3D corner.
var linearBorderWeights = [MaxAxes + 1]float64{0, 0.5, 0.75, 0.875}

// Resolution is the result of resolving one coordinate vector.
type Resolution struct {
	// Coord holds the resolved in-range coordinate per active axis.
	// Inactive axes are zero.
	Coord [MaxAxes]int

	// BorderFactor is the single weight, shared by all axes, with which the
	// sampled color is mixed toward the border color.
	BorderFactor float64

	// OutOfRange is the number of active axes that were outside [0, size)
	// after the mirror-clamp pre-fold.
	OutOfRange int
}

// IsLinear reports whether f belongs to the linear filter class.
// Every other filter mode, including Undefined, samples as nearest.
func IsLinear(f gputypes.FilterMode) bool {
	return f == gputypes.FilterModeLinear
}

// Resolve maps coord onto the [0, size) domain of each of the first axes
// components according to mode and filter.
//
// The border factor is derived from how many axes are simultaneously out of
// range, never from which axes or how far. Resolve panics if size <= 0 or
// axes is outside [1, MaxAxes].
func Resolve(coord [MaxAxes]int, axes, size int, mode WrapMode, filter gputypes.FilterMode) Resolution {
	if size <= 0 {
		panic("address: size must be positive")
	}
	if axes < 1 || axes > MaxAxes {
		panic("address: axes out of range")
	}

	var c [MaxAxes]int
	copy(c[:axes], coord[:axes])

	if mode.IsMirrorClamp() {
		for i := 0; i < axes; i++ {
			if c[i] < 0 {
				c[i] = -c[i] - 1
			}
		}
	}

	k := 0
	for i := 0; i < axes; i++ {
		if c[i] < 0 || c[i] >= size {
			k++
		}
	}

	res := Resolution{OutOfRange: k}

	switch mode {
	case Repeat:
		for i := 0; i < axes; i++ {
			res.Coord[i] = wrap(c[i], size)
		}

	case MirroredRepeat:
		for i := 0; i < axes; i++ {
			res.Coord[i] = mirror(c[i], size)
		}

	case Clamp, MirrorClamp:
		if IsLinear(filter) {
			res.BorderFactor = linearBorderWeights[min(k, MaxAxes)]
		}
		clampAll(&res.Coord, c, axes, size)

	case ClampToBorder, MirrorClampToBorder:
		if k > 0 {
			res.BorderFactor = 1
		}
		clampAll(&res.Coord, c, axes, size)

	default:
		// ClampToEdge, MirrorClampToEdge.
		clampAll(&res.Coord, c, axes, size)
	}

	return res
}

// wrap returns c modulo size in [0, size) for any sign of c.
func wrap(c, size int) int {
	m := c % size
	if m < 0 {
		m += size
	}
	return m
}

// mirror folds c into a triangle wave of period 2*size.
func mirror(c, size int) int {
	m := wrap(c, 2*size)
	if m < size {
		return m
	}
	return 2*size - m - 1
}

func clampAll(dst *[MaxAxes]int, c [MaxAxes]int, axes, size int) {
	for i := 0; i < axes; i++ {
		dst[i] = clampInt(c[i], 0, size-1)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
