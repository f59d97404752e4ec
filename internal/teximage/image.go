// Package teximage builds the procedural test texture sampled by the oracle.
//
// An Image is an immutable grid of RGBA texels for one (target, size,
// border ring) key. The interior carries a checkerboard with four colored
// corners so that every wrap mode produces a distinguishable result; the
// optional border ring is filled with the border color.
package teximage

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/texwrap/internal/address"
	"github.com/gogpu/texwrap/internal/color"
)

// MaxSize is the largest supported texels-per-axis size.
const MaxSize = 1024

// Common errors for image construction.
var (
	// ErrInvalidSize is returned when size is non-positive or above MaxSize.
	ErrInvalidSize = errors.New("teximage: invalid size")

	// ErrInvalidTarget is returned when the target is not recognized.
	ErrInvalidTarget = errors.New("teximage: invalid target")

	// ErrBorderRingUnsupported is returned when a border ring is requested
	// for a target that cannot store one.
	ErrBorderRingUnsupported = errors.New("teximage: border ring not supported for target")
)

// Key identifies one procedural image.
type Key struct {
	Target     address.Target
	Size       int
	BorderRing bool
}

// String returns a compact description such as "2D/8+ring".
func (k Key) String() string {
	if k.BorderRing {
		return fmt.Sprintf("%v/%d+ring", k.Target, k.Size)
	}
	return fmt.Sprintf("%v/%d", k.Target, k.Size)
}

// Image is an immutable N-dimensional texel grid.
//
// Thread safety: Image is never mutated after Build returns and is safe for
// concurrent reads.
type Image struct {
	key    Key
	axes   int
	extent int
	texels []gputypes.Color
}

// Build constructs the procedural image for a key.
func Build(target address.Target, size int, borderRing bool) (*Image, error) {
	if !target.IsValid() {
		return nil, ErrInvalidTarget
	}
	if size <= 0 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if borderRing && !target.SupportsBorderRing() {
		return nil, fmt.Errorf("%w: %v", ErrBorderRingUnsupported, target)
	}

	axes := target.Axes()
	extent := size
	offset := 0
	if borderRing {
		extent += 2
		offset = 1
	}

	count := 1
	for i := 0; i < axes; i++ {
		count *= extent
	}

	img := &Image{
		key:    Key{Target: target, Size: size, BorderRing: borderRing},
		axes:   axes,
		extent: extent,
		texels: make([]gputypes.Color, count),
	}

	var idx [address.MaxAxes]int
	for n := range img.texels {
		rem := n
		for i := 0; i < axes; i++ {
			idx[i] = rem % extent
			rem /= extent
		}

		var local [address.MaxAxes]int
		ring := false
		for i := 0; i < axes; i++ {
			local[i] = idx[i] - offset
			if local[i] < 0 || local[i] >= size {
				ring = true
			}
		}

		if ring {
			img.texels[n] = color.Border
			continue
		}
		img.texels[n] = interiorColor(local, axes, size)
	}

	return img, nil
}

// interiorColor returns the pattern color of an interior texel given its
// ring-free local coordinate.
func interiorColor(local [address.MaxAxes]int, axes, size int) gputypes.Color {
	last := size - 1
	restZero := true
	for i := 2; i < axes; i++ {
		if local[i] != 0 {
			restZero = false
		}
	}

	if restZero {
		x := local[0]
		y := 0
		if axes > 1 {
			y = local[1]
		}
		xMax := x == last
		yMax := axes > 1 && y == last
		switch {
		case xMax && yMax:
			return color.Orange
		case yMax && x == 0:
			return color.Blue
		case xMax && y == 0:
			return color.Cyan
		case x == 0 && y == 0:
			return color.Red
		}
	}

	sum := 0
	for i := 0; i < axes; i++ {
		sum += local[i]
	}
	if sum%2 == 0 {
		return color.White
	}
	return color.Black
}

// Key returns the key the image was built for.
func (img *Image) Key() Key {
	return img.key
}

// Axes returns the number of active axes.
func (img *Image) Axes() int {
	return img.axes
}

// Size returns the interior texels per axis.
func (img *Image) Size() int {
	return img.key.Size
}

// Extent returns the stored texels per axis, including the border ring.
func (img *Image) Extent() int {
	return img.extent
}

// Len returns the total number of stored texels.
func (img *Image) Len() int {
	return len(img.texels)
}

// At returns the stored texel at a storage index. Components beyond the
// active axes are ignored. At panics if the index is out of storage range.
func (img *Image) At(idx [address.MaxAxes]int) gputypes.Color {
	n := 0
	stride := 1
	for i := 0; i < img.axes; i++ {
		if idx[i] < 0 || idx[i] >= img.extent {
			panic(fmt.Sprintf("teximage: index %v out of range for %v", idx, img.key))
		}
		n += idx[i] * stride
		stride *= img.extent
	}
	return img.texels[n]
}

// Interior returns the texel at an interior coordinate, shifting into the
// ring-inclusive storage layout when the image has a border ring.
func (img *Image) Interior(coord [address.MaxAxes]int) gputypes.Color {
	return img.At(img.StorageIndex(coord))
}

// StorageIndex converts an interior coordinate into a storage index.
func (img *Image) StorageIndex(coord [address.MaxAxes]int) [address.MaxAxes]int {
	var idx [address.MaxAxes]int
	for i := 0; i < img.axes; i++ {
		idx[i] = coord[i]
		if img.key.BorderRing {
			idx[i]++
		}
	}
	return idx
}
