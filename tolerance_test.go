package texwrap

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestDefaultTolerance(t *testing.T) {
	tests := []struct {
		format gputypes.TextureFormat
		filter gputypes.FilterMode
		want   uint32
	}{
		{gputypes.TextureFormatRGBA8Unorm, gputypes.FilterModeNearest, 1},
		{gputypes.TextureFormatRGBA8Unorm, gputypes.FilterModeLinear, 2},
		{gputypes.TextureFormatRGBA8UnormSrgb, gputypes.FilterModeNearest, 2},
		{gputypes.TextureFormatRGBA8UnormSrgb, gputypes.FilterModeLinear, 3},
		{gputypes.TextureFormatRGBA16Float, gputypes.FilterModeNearest, 1},
		{gputypes.TextureFormatRGBA32Float, gputypes.FilterModeLinear, 2},
		{gputypes.TextureFormatRGBA8Snorm, gputypes.FilterModeNearest, 3},
		{gputypes.TextureFormatRG11B10Ufloat, gputypes.FilterModeNearest, 5},
		{gputypes.TextureFormatBC1RGBAUnorm, gputypes.FilterModeLinear, 10},
		{gputypes.TextureFormatBC1RGBAUnormSrgb, gputypes.FilterModeNearest, 10},
		{gputypes.TextureFormatUndefined, gputypes.FilterModeNearest, 1},
	}

	for _, tt := range tests {
		t.Run(tt.format.String()+"/"+tt.filter.String(), func(t *testing.T) {
			if got := DefaultTolerance(tt.format, tt.filter); got != tt.want {
				t.Errorf("DefaultTolerance() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStepTolerance(t *testing.T) {
	tests := []struct {
		bits int
		want uint32
	}{
		{1, 255},
		{2, 85},
		{4, 17},
		{5, 9},
		{8, 1},
		{16, 1},
	}
	for _, tt := range tests {
		if got := stepTolerance(tt.bits); got != tt.want {
			t.Errorf("stepTolerance(%d) = %d, want %d", tt.bits, got, tt.want)
		}
	}
}
