// Package address maps integer texel coordinates onto a texture's addressable
// domain according to a wrap mode and filter class.
//
// The package owns the closed vocabulary of the oracle (WrapMode, Target)
// and the single place where every wrap mode's behavior is defined: the
// mirror pre-fold, its contribution to the border-axis count, and the final
// coordinate resolution.
package address

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// MaxAxes is the largest number of active axes any target has.
const MaxAxes = 3

// Target is the texture target (dimensionality) being sampled.
type Target uint8

const (
	// Target1D is a one-dimensional texture.
	Target1D Target = iota

	// Target2D is a two-dimensional texture.
	Target2D

	// Target3D is a three-dimensional texture.
	Target3D

	// TargetRectangle is a two-dimensional texture addressed without
	// mipmaps or border texels.
	TargetRectangle

	targetCount
)

const unknownName = "Unknown"

// String returns the target name.
func (t Target) String() string {
	switch t {
	case Target1D:
		return "1D"
	case Target2D:
		return "2D"
	case Target3D:
		return "3D"
	case TargetRectangle:
		return "Rectangle"
	default:
		return unknownName
	}
}

// IsValid reports whether t is a known target.
func (t Target) IsValid() bool {
	return t < targetCount
}

// Axes returns the number of active coordinate axes for the target.
// Unknown targets report 0.
func (t Target) Axes() int {
	switch t {
	case Target1D:
		return 1
	case Target2D, TargetRectangle:
		return 2
	case Target3D:
		return 3
	default:
		return 0
	}
}

// SupportsBorderRing reports whether the target may store an explicit
// border ring around its texels.
func (t Target) SupportsBorderRing() bool {
	return t != TargetRectangle && t.IsValid()
}

// Dimension maps the target onto the WebGPU texture dimension it would be
// created with. Rectangle textures are plain 2D textures there.
func (t Target) Dimension() gputypes.TextureDimension {
	switch t {
	case Target1D:
		return gputypes.TextureDimension1D
	case Target3D:
		return gputypes.TextureDimension3D
	default:
		return gputypes.TextureDimension2D
	}
}

// Targets returns every known target in declaration order.
func Targets() []Target {
	return []Target{Target1D, Target2D, Target3D, TargetRectangle}
}

// WrapMode is the policy for mapping an out-of-range coordinate back into
// the texture.
type WrapMode uint8

const (
	// Repeat tiles the texture periodically.
	Repeat WrapMode = iota

	// Clamp clamps to the edge; with linear filtering the edge sample is
	// blended toward the border color.
	Clamp

	// ClampToEdge clamps to the edge texel.
	ClampToEdge

	// ClampToBorder returns the border color for any out-of-range axis.
	ClampToBorder

	// MirroredRepeat tiles the texture with every other period reflected.
	MirroredRepeat

	// MirrorClampToEdge reflects once around the origin, then clamps to edge.
	MirrorClampToEdge

	// MirrorClampToBorder reflects once around the origin, then clamps to
	// the border color.
	MirrorClampToBorder

	// MirrorClamp reflects once around the origin, then behaves like Clamp.
	MirrorClamp

	wrapModeCount
)

// Extension identifies the capability a wrap mode depends on.
type Extension uint8

const (
	// ExtensionNone marks modes available on every implementation.
	ExtensionNone Extension = iota

	// ExtensionBorderClamp gates ClampToBorder.
	ExtensionBorderClamp

	// ExtensionMirroredRepeat gates MirroredRepeat.
	ExtensionMirroredRepeat

	// ExtensionMirrorClamp gates MirrorClamp, MirrorClampToEdge and
	// MirrorClampToBorder.
	ExtensionMirrorClamp

	// ExtensionMirrorClampToEdge gates MirrorClampToEdge alone, for
	// implementations exposing only that subset.
	ExtensionMirrorClampToEdge
)

// String returns the extension name.
func (e Extension) String() string {
	switch e {
	case ExtensionNone:
		return "None"
	case ExtensionBorderClamp:
		return "BorderClamp"
	case ExtensionMirroredRepeat:
		return "MirroredRepeat"
	case ExtensionMirrorClamp:
		return "MirrorClamp"
	case ExtensionMirrorClampToEdge:
		return "MirrorClampToEdge"
	default:
		return unknownName
	}
}

type wrapInfo struct {
	name      string
	glName    string
	rectangle bool
	extension Extension
	mirrorPre bool
}

var wrapInfoTable = [wrapModeCount]wrapInfo{
	Repeat:              {"Repeat", "GL_REPEAT", false, ExtensionNone, false},
	Clamp:               {"Clamp", "GL_CLAMP", true, ExtensionNone, false},
	ClampToEdge:         {"ClampToEdge", "GL_CLAMP_TO_EDGE", true, ExtensionNone, false},
	ClampToBorder:       {"ClampToBorder", "GL_CLAMP_TO_BORDER", true, ExtensionBorderClamp, false},
	MirroredRepeat:      {"MirroredRepeat", "GL_MIRRORED_REPEAT", false, ExtensionMirroredRepeat, false},
	MirrorClampToEdge:   {"MirrorClampToEdge", "GL_MIRROR_CLAMP_TO_EDGE_EXT", false, ExtensionMirrorClampToEdge, true},
	MirrorClampToBorder: {"MirrorClampToBorder", "GL_MIRROR_CLAMP_TO_BORDER_EXT", false, ExtensionMirrorClamp, true},
	MirrorClamp:         {"MirrorClamp", "GL_MIRROR_CLAMP_EXT", false, ExtensionMirrorClamp, true},
}

// String returns the wrap mode name.
func (m WrapMode) String() string {
	if !m.IsValid() {
		return unknownName
	}
	return wrapInfoTable[m].name
}

// GLName returns the OpenGL enum spelling of the wrap mode.
func (m WrapMode) GLName() string {
	if !m.IsValid() {
		return unknownName
	}
	return wrapInfoTable[m].glName
}

// IsValid reports whether m is a known wrap mode.
func (m WrapMode) IsValid() bool {
	return m < wrapModeCount
}

// ValidForRectangle reports whether the mode may be used with a rectangle
// target. Rectangle textures accept only the clamp family; GL rejects the
// periodic and mirroring modes with INVALID_ENUM.
func (m WrapMode) ValidForRectangle() bool {
	return m.IsValid() && wrapInfoTable[m].rectangle
}

// Extension returns the capability the mode depends on.
func (m WrapMode) Extension() Extension {
	if !m.IsValid() {
		return ExtensionNone
	}
	return wrapInfoTable[m].extension
}

// IsMirrorClamp reports whether the mode reflects negative coordinates once
// around the origin before resolving.
func (m WrapMode) IsMirrorClamp() bool {
	return m.IsValid() && wrapInfoTable[m].mirrorPre
}

// AddressMode returns the WebGPU address mode equivalent to m.
// ok is false for modes WebGPU cannot express.
func (m WrapMode) AddressMode() (mode gputypes.AddressMode, ok bool) {
	switch m {
	case Repeat:
		return gputypes.AddressModeRepeat, true
	case ClampToEdge:
		return gputypes.AddressModeClampToEdge, true
	case MirroredRepeat:
		return gputypes.AddressModeMirrorRepeat, true
	default:
		return gputypes.AddressModeUndefined, false
	}
}

// WrapModes returns every known wrap mode in declaration order.
func WrapModes() []WrapMode {
	modes := make([]WrapMode, 0, wrapModeCount)
	for m := WrapMode(0); m < wrapModeCount; m++ {
		modes = append(modes, m)
	}
	return modes
}

// ParseWrapMode parses a wrap mode from its name or its GL enum spelling.
// Matching is case-insensitive.
func ParseWrapMode(s string) (WrapMode, error) {
	for m := WrapMode(0); m < wrapModeCount; m++ {
		info := wrapInfoTable[m]
		if strings.EqualFold(s, info.name) || strings.EqualFold(s, info.glName) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("address: unknown wrap mode %q", s)
}

// ParseTarget parses a target name such as "2D" or "rectangle".
func ParseTarget(s string) (Target, error) {
	for _, t := range Targets() {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	switch strings.ToLower(s) {
	case "rect", "gl_texture_rectangle":
		return TargetRectangle, nil
	case "gl_texture_1d":
		return Target1D, nil
	case "gl_texture_2d":
		return Target2D, nil
	case "gl_texture_3d":
		return Target3D, nil
	}
	return 0, fmt.Errorf("address: unknown target %q", s)
}
