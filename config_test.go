package texwrap

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestConfig_Validate(t *testing.T) {
	all := AllCapabilities()
	none := Capabilities{}

	tests := []struct {
		name    string
		cfg     Config
		caps    Capabilities
		wantErr error
	}{
		{"basic", Config{Target: Target2D, Size: 8, Wrap: Repeat}, none, nil},
		{"clamp 1D ring", Config{Target: Target1D, Size: 8, Wrap: Clamp, BorderRing: true}, all, nil},
		{"zero size", Config{Target: Target2D, Size: 0, Wrap: Repeat}, all, ErrInvalidSize},
		{"huge size", Config{Target: Target2D, Size: 1 << 20, Wrap: Repeat}, all, ErrInvalidSize},
		{"unknown target", Config{Target: TextureTarget(9), Size: 8}, all, ErrUnsupportedTarget},
		{"3D without support", Config{Target: Target3D, Size: 8, Wrap: Repeat}, none, ErrUnsupportedTarget},
		{"rectangle without support", Config{Target: TargetRectangle, Size: 8, Wrap: Clamp}, none, ErrUnsupportedTarget},
		{"border clamp gated", Config{Target: Target2D, Size: 8, Wrap: ClampToBorder}, none, ErrUnsupportedWrap},
		{"mirrored repeat gated", Config{Target: Target2D, Size: 8, Wrap: MirroredRepeat}, none, ErrUnsupportedWrap},
		{"mirror clamp gated", Config{Target: Target2D, Size: 8, Wrap: MirrorClamp}, Capabilities{MirrorClampToEdge: true}, ErrUnsupportedWrap},
		{"mirror clamp to edge subset", Config{Target: Target2D, Size: 8, Wrap: MirrorClampToEdge}, Capabilities{MirrorClampToEdge: true}, nil},
		{"mirror clamp implies edge", Config{Target: Target2D, Size: 8, Wrap: MirrorClampToEdge}, Capabilities{MirrorClamp: true}, nil},
		{"unknown wrap", Config{Target: Target2D, Size: 8, Wrap: WrapMode(77)}, all, ErrUnsupportedWrap},
		{"rectangle repeat", Config{Target: TargetRectangle, Size: 8, Wrap: Repeat}, all, ErrRectangleWrap},
		{"rectangle mirrored repeat", Config{Target: TargetRectangle, Size: 8, Wrap: MirroredRepeat}, all, ErrRectangleWrap},
		{"rectangle mirror clamp", Config{Target: TargetRectangle, Size: 8, Wrap: MirrorClamp}, all, ErrRectangleWrap},
		{"rectangle mirror clamp to edge", Config{Target: TargetRectangle, Size: 8, Wrap: MirrorClampToEdge}, all, ErrRectangleWrap},
		{"rectangle mirror clamp to border", Config{Target: TargetRectangle, Size: 8, Wrap: MirrorClampToBorder}, all, ErrRectangleWrap},
		{"rectangle clamp to border", Config{Target: TargetRectangle, Size: 8, Wrap: ClampToBorder}, all, nil},
		{"rectangle ring", Config{Target: TargetRectangle, Size: 8, Wrap: Clamp, BorderRing: true}, all, ErrRectangleBorder},
		{"ring unsupported", Config{Target: Target2D, Size: 8, Wrap: Clamp, BorderRing: true}, none, ErrUnsupportedBorder},
		{"swizzle unsupported", Config{Target: Target2D, Size: 8, Wrap: Clamp, Swizzle: SwizzleTest}, none, ErrUnsupportedSwizzle},
		{"swizzle unknown", Config{Target: Target2D, Size: 8, Wrap: Clamp, Swizzle: Swizzle(5)}, all, ErrUnsupportedSwizzle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate(tt.caps)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigs(t *testing.T) {
	all := AllCapabilities()

	// 8 wraps x 2 filters x 2 rings x 2 swizzles.
	if got := len(Configs(Target2D, 8, all)); got != 64 {
		t.Errorf("2D configs = %d, want 64", got)
	}

	// Clamp, ClampToEdge, ClampToBorder x 2 filters x 1 ring x 2 swizzles.
	rect := Configs(TargetRectangle, 8, all)
	if got := len(rect); got != 12 {
		t.Errorf("rectangle configs = %d, want 12", got)
	}
	for _, cfg := range rect {
		if cfg.Wrap.IsMirrorClamp() || cfg.Wrap == Repeat || cfg.Wrap == MirroredRepeat {
			t.Errorf("rectangle config with %v", cfg.Wrap)
		}
	}

	// Repeat, Clamp, ClampToEdge x 2 filters, no ring, no swizzle.
	if got := len(Configs(Target1D, 8, Capabilities{})); got != 6 {
		t.Errorf("minimal configs = %d, want 6", got)
	}

	if got := len(Configs(Target3D, 8, Capabilities{})); got != 0 {
		t.Errorf("3D configs without support = %d, want 0", got)
	}

	for _, cfg := range Configs(Target3D, 4, all) {
		if err := cfg.Validate(all); err != nil {
			t.Errorf("Configs returned invalid %v: %v", cfg, err)
		}
	}
}

func TestConfig_Request(t *testing.T) {
	cfg := Config{Target: Target3D, Size: 4, Wrap: MirrorClamp, Filter: gputypes.FilterModeLinear, BorderRing: true, Swizzle: SwizzleTest}
	req := cfg.Request(Coord{1, 2, 3})

	if req.Key() != cfg.Key() {
		t.Errorf("request key %v, config key %v", req.Key(), cfg.Key())
	}
	if req.Wrap != cfg.Wrap || req.Filter != cfg.Filter || req.Swizzle != cfg.Swizzle {
		t.Errorf("Request() = %+v does not carry %+v", req, cfg)
	}
	if req.Coord != (Coord{1, 2, 3}) {
		t.Errorf("Coord = %v", req.Coord)
	}
}

func TestCapabilities_Supports(t *testing.T) {
	none := Capabilities{}
	if !none.Supports(ExtensionNone) {
		t.Error("ExtensionNone must always be supported")
	}
	for _, ext := range []Extension{ExtensionBorderClamp, ExtensionMirroredRepeat, ExtensionMirrorClamp, ExtensionMirrorClampToEdge} {
		if none.Supports(ext) {
			t.Errorf("empty capabilities support %v", ext)
		}
		if !AllCapabilities().Supports(ext) {
			t.Errorf("AllCapabilities does not support %v", ext)
		}
	}
}
