package color

import "github.com/gogpu/gputypes"

// Swizzle selects a fixed permutation of the four output channels.
type Swizzle uint8

const (
	// SwizzleIdentity leaves channels in RGBA order.
	SwizzleIdentity Swizzle = iota

	// SwizzleTest reorders channels to (B, A, R, G).
	SwizzleTest
)

// swizzleTable holds, per swizzle, the source channel of each output channel.
var swizzleTable = [...][4]int{
	SwizzleIdentity: {0, 1, 2, 3},
	SwizzleTest:     {2, 3, 0, 1},
}

// String returns the swizzle name.
func (s Swizzle) String() string {
	switch s {
	case SwizzleIdentity:
		return "Identity"
	case SwizzleTest:
		return "BARG"
	default:
		return "Unknown"
	}
}

// IsValid reports whether s is a known swizzle.
func (s Swizzle) IsValid() bool {
	return int(s) < len(swizzleTable)
}

// Apply permutes the channels of c. Unknown swizzles behave as identity.
func (s Swizzle) Apply(c gputypes.Color) gputypes.Color {
	if !s.IsValid() || s == SwizzleIdentity {
		return c
	}
	src := Channels(c)
	perm := swizzleTable[s]
	var dst [4]float64
	for i, from := range perm {
		dst[i] = src[from]
	}
	return FromChannels(dst)
}
