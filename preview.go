package texwrap

import (
	"fmt"

	"github.com/gogpu/texwrap/internal/teximage"
)

// PixelGrid is a row-major grid of quantized pixels.
type PixelGrid = teximage.PixelGrid

// Preview renders the oracle's expected pixels over the window
// [-margin, size+margin) of the first two axes, with any third axis at 0.
// 1D targets produce a single row. A negative margin uses the texture size;
// margins above teximage.MaxSize are rejected.
func Preview(cfg Config, margin int) (*PixelGrid, error) {
	if err := cfg.Validate(AllCapabilities()); err != nil {
		return nil, err
	}
	if margin > teximage.MaxSize {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrInvalidMargin, margin, teximage.MaxSize)
	}
	img, err := BuildImage(cfg.Target, cfg.Size, cfg.BorderRing)
	if err != nil {
		return nil, fmt.Errorf("texwrap: preview: %w", err)
	}
	smp := NewSampler(img)

	lo, hi := window(cfg.Size, margin)
	width := hi - lo
	height := 1
	if cfg.Target.Axes() > 1 {
		height = width
	}

	grid, err := teximage.NewPixelGrid(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			coord := Coord{lo + x}
			if height > 1 {
				coord[1] = lo + y
			}
			grid.Set(x, y, smp.Sample(cfg.Request(coord)).Pixel)
		}
	}
	return grid, nil
}
