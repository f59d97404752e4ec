package texwrap

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/texwrap/internal/address"
	"github.com/gogpu/texwrap/internal/color"
	"github.com/gogpu/texwrap/internal/teximage"
)

// MaxAxes is the largest number of active coordinate axes.
const MaxAxes = address.MaxAxes

// Coord is an integer texel coordinate. Components beyond the target's
// active axes are ignored.
type Coord = [MaxAxes]int

// TextureTarget is the dimensionality of the sampled texture.
type TextureTarget = address.Target

// Texture targets.
const (
	Target1D        = address.Target1D
	Target2D        = address.Target2D
	Target3D        = address.Target3D
	TargetRectangle = address.TargetRectangle
)

// WrapMode is the texture address mode applied to out-of-range coordinates.
type WrapMode = address.WrapMode

// Wrap modes.
const (
	Repeat              = address.Repeat
	Clamp               = address.Clamp
	ClampToEdge         = address.ClampToEdge
	ClampToBorder       = address.ClampToBorder
	MirroredRepeat      = address.MirroredRepeat
	MirrorClampToEdge   = address.MirrorClampToEdge
	MirrorClampToBorder = address.MirrorClampToBorder
	MirrorClamp         = address.MirrorClamp
)

// Extension names the capability a wrap mode depends on.
type Extension = address.Extension

// Wrap mode extensions.
const (
	ExtensionNone              = address.ExtensionNone
	ExtensionBorderClamp       = address.ExtensionBorderClamp
	ExtensionMirroredRepeat    = address.ExtensionMirroredRepeat
	ExtensionMirrorClamp       = address.ExtensionMirrorClamp
	ExtensionMirrorClampToEdge = address.ExtensionMirrorClampToEdge
)

// Swizzle is a fixed permutation of the four output channels.
type Swizzle = color.Swizzle

// Swizzles.
const (
	SwizzleIdentity = color.SwizzleIdentity
	SwizzleTest     = color.SwizzleTest
)

// Pixel is an 8-bit RGBA value.
type Pixel = color.Pixel

// TextureImage is the immutable procedural texel grid for one ImageKey.
type TextureImage = teximage.Image

// ImageKey identifies a TextureImage.
type ImageKey = teximage.Key

// Palette of the procedural texture.
var (
	Red         = color.Red
	Cyan        = color.Cyan
	Blue        = color.Blue
	Orange      = color.Orange
	White       = color.White
	Black       = color.Black
	BorderColor = color.Border
)

// Filters lists the two filter classes the oracle distinguishes.
var Filters = []gputypes.FilterMode{gputypes.FilterModeNearest, gputypes.FilterModeLinear}

// WrapModes returns every wrap mode.
func WrapModes() []WrapMode { return address.WrapModes() }

// Targets returns every texture target.
func Targets() []TextureTarget { return address.Targets() }

// ParseWrapMode parses a wrap mode name or GL enum spelling.
func ParseWrapMode(s string) (WrapMode, error) { return address.ParseWrapMode(s) }

// ParseTarget parses a texture target name.
func ParseTarget(s string) (TextureTarget, error) { return address.ParseTarget(s) }

// BuildImage constructs the procedural texture for a key.
func BuildImage(target TextureTarget, size int, borderRing bool) (*TextureImage, error) {
	return teximage.Build(target, size, borderRing)
}

// Quantize converts a channel value to a byte with the shared rounding rule.
func Quantize(v float64) uint8 { return color.Quantize(v) }

// QuantizeColor quantizes every channel of c.
func QuantizeColor(c gputypes.Color) Pixel { return color.QuantizeColor(c) }

// Dequantize returns the channel value a byte encodes.
func Dequantize(b uint8) float64 { return color.Dequantize(b) }
