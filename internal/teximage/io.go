package teximage

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/texwrap/internal/color"
)

// ErrInvalidScale is returned when a preview scale factor is not positive.
var ErrInvalidScale = errors.New("teximage: invalid scale")

// PixelGrid is a row-major 2D grid of quantized pixels.
type PixelGrid struct {
	Width  int
	Height int
	Pix    []color.Pixel
}

// NewPixelGrid allocates a width x height grid.
func NewPixelGrid(width, height int) (*PixelGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &PixelGrid{Width: width, Height: height, Pix: make([]color.Pixel, width*height)}, nil
}

// Set stores p at (x, y).
func (g *PixelGrid) Set(x, y int, p color.Pixel) {
	g.Pix[y*g.Width+x] = p
}

// At returns the pixel at (x, y).
func (g *PixelGrid) At(x, y int) color.Pixel {
	return g.Pix[y*g.Width+x]
}

// ToNRGBA converts the grid to a standard library image, upscaled by scale
// with nearest-neighbor filtering so each texel stays a sharp block.
func (g *PixelGrid) ToNRGBA(scale int) (*image.NRGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}

	src := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := g.At(x, y)
			off := src.PixOffset(x, y)
			copy(src.Pix[off:off+4], p[:])
		}
	}
	if scale == 1 {
		return src, nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, g.Width*scale, g.Height*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// EncodePNG writes the grid as a PNG upscaled by scale.
func (g *PixelGrid) EncodePNG(w io.Writer, scale int) error {
	img, err := g.ToNRGBA(scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("teximage: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the grid to a PNG file.
func (g *PixelGrid) SavePNG(path string, scale int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("teximage: create file: %w", err)
	}

	if err := g.EncodePNG(f, scale); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
