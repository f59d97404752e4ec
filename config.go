package texwrap

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/texwrap/internal/teximage"
)

// Configuration errors. Validate wraps them with the offending values.
var (
	ErrInvalidSize        = errors.New("texwrap: invalid size")
	ErrUnsupportedTarget  = errors.New("texwrap: target not supported")
	ErrUnsupportedWrap    = errors.New("texwrap: wrap mode not supported")
	ErrRectangleWrap      = errors.New("texwrap: wrap mode not allowed for rectangle textures")
	ErrRectangleBorder    = errors.New("texwrap: border ring not allowed for rectangle textures")
	ErrUnsupportedBorder  = errors.New("texwrap: border ring not supported")
	ErrUnsupportedSwizzle = errors.New("texwrap: swizzle not supported")
	ErrInvalidMargin      = errors.New("texwrap: invalid margin")
)

// Capabilities describes what the implementation under test exposes.
type Capabilities struct {
	Texture3D         bool
	TextureRectangle  bool
	BorderRing        bool
	BorderClamp       bool
	MirroredRepeat    bool
	MirrorClamp       bool
	MirrorClampToEdge bool
	Swizzle           bool
}

// AllCapabilities enables every optional feature.
func AllCapabilities() Capabilities {
	return Capabilities{
		Texture3D:         true,
		TextureRectangle:  true,
		BorderRing:        true,
		BorderClamp:       true,
		MirroredRepeat:    true,
		MirrorClamp:       true,
		MirrorClampToEdge: true,
		Swizzle:           true,
	}
}

// Supports reports whether the capability gating ext is present.
func (c Capabilities) Supports(ext Extension) bool {
	switch ext {
	case ExtensionNone:
		return true
	case ExtensionBorderClamp:
		return c.BorderClamp
	case ExtensionMirroredRepeat:
		return c.MirroredRepeat
	case ExtensionMirrorClamp:
		return c.MirrorClamp
	case ExtensionMirrorClampToEdge:
		return c.MirrorClampToEdge || c.MirrorClamp
	default:
		return false
	}
}

// Config is one texture configuration of a sweep.
type Config struct {
	Target     TextureTarget
	Size       int
	Wrap       WrapMode
	Filter     gputypes.FilterMode
	BorderRing bool
	Swizzle    Swizzle
}

// String returns a compact description of the configuration.
func (c Config) String() string {
	return fmt.Sprintf("%v %v size=%d filter=%v ring=%v swizzle=%v",
		c.Target, c.Wrap, c.Size, c.Filter, c.BorderRing, c.Swizzle)
}

// Key returns the image key of the configuration.
func (c Config) Key() ImageKey {
	return ImageKey{Target: c.Target, Size: c.Size, BorderRing: c.BorderRing}
}

// Request returns a sample request for coord under this configuration.
func (c Config) Request(coord Coord) SampleRequest {
	return SampleRequest{
		Target:     c.Target,
		Size:       c.Size,
		Wrap:       c.Wrap,
		Filter:     c.Filter,
		BorderRing: c.BorderRing,
		Swizzle:    c.Swizzle,
		Coord:      coord,
	}
}

// Validate rejects configurations the implementation cannot run or the
// oracle does not define.
func (c Config) Validate(caps Capabilities) error {
	if !c.Target.IsValid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedTarget, c.Target)
	}
	if c.Size <= 0 || c.Size > teximage.MaxSize {
		return fmt.Errorf("%w: %d", ErrInvalidSize, c.Size)
	}
	if c.Target == Target3D && !caps.Texture3D {
		return fmt.Errorf("%w: %v", ErrUnsupportedTarget, c.Target)
	}
	if c.Target == TargetRectangle && !caps.TextureRectangle {
		return fmt.Errorf("%w: %v", ErrUnsupportedTarget, c.Target)
	}
	if !c.Wrap.IsValid() || !caps.Supports(c.Wrap.Extension()) {
		return fmt.Errorf("%w: %v", ErrUnsupportedWrap, c.Wrap)
	}
	if c.Target == TargetRectangle && !c.Wrap.ValidForRectangle() {
		return fmt.Errorf("%w: %v", ErrRectangleWrap, c.Wrap)
	}
	if c.BorderRing {
		if !c.Target.SupportsBorderRing() {
			return fmt.Errorf("%w: %v", ErrRectangleBorder, c.Target)
		}
		if !caps.BorderRing {
			return ErrUnsupportedBorder
		}
	}
	if c.Swizzle != SwizzleIdentity && (!caps.Swizzle || !c.Swizzle.IsValid()) {
		return fmt.Errorf("%w: %v", ErrUnsupportedSwizzle, c.Swizzle)
	}
	return nil
}

// Configs enumerates every valid configuration of target and size under
// caps: all wrap modes, both filter classes, with and without a border
// ring, and with and without the test swizzle.
func Configs(target TextureTarget, size int, caps Capabilities) []Config {
	var out []Config
	for _, wrap := range WrapModes() {
		for _, filter := range Filters {
			for _, ring := range []bool{false, true} {
				for _, sw := range []Swizzle{SwizzleIdentity, SwizzleTest} {
					cfg := Config{
						Target:     target,
						Size:       size,
						Wrap:       wrap,
						Filter:     filter,
						BorderRing: ring,
						Swizzle:    sw,
					}
					if cfg.Validate(caps) == nil {
						out = append(out, cfg)
					}
				}
			}
		}
	}
	return out
}
