package texwrap

import (
	"fmt"
	"strings"
)

// Probe reports whether every channel of observed is within tolerance of
// expected.
func Probe(observed, expected Pixel, tolerance uint32) bool {
	for i := range observed {
		if channelDiff(observed[i], expected[i]) > tolerance {
			return false
		}
	}
	return true
}

func channelDiff(a, b uint8) uint32 {
	if a > b {
		return uint32(a - b)
	}
	return uint32(b - a)
}

// ProbeError describes a failed probe.
type ProbeError struct {
	Request   SampleRequest
	Expected  Pixel
	Observed  Pixel
	Tolerance uint32
}

// Error formats the failure with the active coordinates and per-channel
// expected and observed values.
func (e *ProbeError) Error() string {
	var b strings.Builder
	axes := max(e.Request.Target.Axes(), 1)
	b.WriteString("probe at (")
	for i := 0; i < axes; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%d", e.Request.Coord[i])
	}
	fmt.Fprintf(&b, ") %v %v size=%d filter=%v ring=%v swizzle=%v",
		e.Request.Target, e.Request.Wrap, e.Request.Size, e.Request.Filter,
		e.Request.BorderRing, e.Request.Swizzle)
	fmt.Fprintf(&b, ": expected %s, observed %s, tolerance %d",
		formatPixel(e.Expected), formatPixel(e.Observed), e.Tolerance)
	return b.String()
}

// Channels returns the indices of the channels that exceeded tolerance.
func (e *ProbeError) Channels() []int {
	var out []int
	for i := range e.Observed {
		if channelDiff(e.Observed[i], e.Expected[i]) > e.Tolerance {
			out = append(out, i)
		}
	}
	return out
}

func formatPixel(p Pixel) string {
	return fmt.Sprintf("(%d, %d, %d, %d)", p[0], p[1], p[2], p[3])
}

// Check compares observed against expected for req and returns a
// *ProbeError on mismatch.
func Check(req SampleRequest, observed, expected Pixel, tolerance uint32) error {
	if Probe(observed, expected, tolerance) {
		return nil
	}
	return &ProbeError{Request: req, Expected: expected, Observed: observed, Tolerance: tolerance}
}
