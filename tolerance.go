package texwrap

import "github.com/gogpu/gputypes"

// ToleranceFunc returns the per-channel probe tolerance for a texture
// format and filter.
type ToleranceFunc func(format gputypes.TextureFormat, filter gputypes.FilterMode) uint32

// DefaultTolerance derives a per-channel tolerance, in 8-bit steps, from the
// precision of the format: one quantization step of the narrowest channel,
// one more for sRGB encoding, and one more for linear filtering. Unknown
// formats are treated as 8-bit unorm.
func DefaultTolerance(format gputypes.TextureFormat, filter gputypes.FilterMode) uint32 {
	tol := stepTolerance(formatBits(format))
	if isSRGB(format) {
		tol++
	}
	if filter == gputypes.FilterModeLinear {
		tol++
	}
	return tol
}

// stepTolerance is one quantization step of a bits-wide channel expressed
// in 8-bit units, rounded up.
func stepTolerance(bits int) uint32 {
	if bits >= 8 {
		return 1
	}
	levels := uint32(1)<<uint(bits) - 1
	return (255 + levels - 1) / levels
}

// formatBits returns the effective precision of the narrowest color channel.
func formatBits(format gputypes.TextureFormat) int {
	switch format {
	case gputypes.TextureFormatR8Snorm,
		gputypes.TextureFormatRG8Snorm,
		gputypes.TextureFormatRGBA8Snorm:
		return 7
	case gputypes.TextureFormatRG11B10Ufloat:
		return 6
	case gputypes.TextureFormatBC1RGBAUnorm, gputypes.TextureFormatBC1RGBAUnormSrgb,
		gputypes.TextureFormatBC2RGBAUnorm, gputypes.TextureFormatBC2RGBAUnormSrgb,
		gputypes.TextureFormatBC3RGBAUnorm, gputypes.TextureFormatBC3RGBAUnormSrgb,
		gputypes.TextureFormatETC2RGB8Unorm, gputypes.TextureFormatETC2RGB8UnormSrgb,
		gputypes.TextureFormatETC2RGB8A1Unorm, gputypes.TextureFormatETC2RGB8A1UnormSrgb,
		gputypes.TextureFormatETC2RGBA8Unorm, gputypes.TextureFormatETC2RGBA8UnormSrgb:
		return 5
	default:
		return 8
	}
}

func isSRGB(format gputypes.TextureFormat) bool {
	switch format {
	case gputypes.TextureFormatRGBA8UnormSrgb,
		gputypes.TextureFormatBGRA8UnormSrgb,
		gputypes.TextureFormatBC1RGBAUnormSrgb,
		gputypes.TextureFormatBC2RGBAUnormSrgb,
		gputypes.TextureFormatBC3RGBAUnormSrgb,
		gputypes.TextureFormatBC7RGBAUnormSrgb,
		gputypes.TextureFormatETC2RGB8UnormSrgb,
		gputypes.TextureFormatETC2RGB8A1UnormSrgb,
		gputypes.TextureFormatETC2RGBA8UnormSrgb:
		return true
	default:
		return false
	}
}
