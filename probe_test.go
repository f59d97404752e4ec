package texwrap

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestProbe(t *testing.T) {
	tests := []struct {
		name     string
		observed Pixel
		expected Pixel
		tol      uint32
		want     bool
	}{
		{"exact", Pixel{1, 2, 3, 4}, Pixel{1, 2, 3, 4}, 0, true},
		{"within", Pixel{10, 20, 30, 40}, Pixel{11, 19, 30, 41}, 1, true},
		{"red over", Pixel{10, 20, 30, 40}, Pixel{12, 20, 30, 40}, 1, false},
		{"alpha over", Pixel{10, 20, 30, 40}, Pixel{10, 20, 30, 43}, 2, false},
		{"extremes", Pixel{0, 255, 0, 255}, Pixel{255, 0, 255, 0}, 255, true},
		{"extremes strict", Pixel{0, 255, 0, 255}, Pixel{255, 0, 255, 0}, 254, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Probe(tt.observed, tt.expected, tt.tol); got != tt.want {
				t.Errorf("Probe(%v, %v, %d) = %v, want %v", tt.observed, tt.expected, tt.tol, got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	req := SampleRequest{
		Target: Target2D, Size: 8, Wrap: ClampToBorder,
		Filter: gputypes.FilterModeLinear, Coord: Coord{-1, 3, 99},
	}

	if err := Check(req, Pixel{25, 229, 127, 204}, Pixel{25, 229, 127, 204}, 1); err != nil {
		t.Fatalf("Check on equal pixels = %v", err)
	}

	err := Check(req, Pixel{255, 229, 120, 204}, Pixel{25, 229, 127, 204}, 1)
	var pe *ProbeError
	if !errors.As(err, &pe) {
		t.Fatalf("Check error = %v, want *ProbeError", err)
	}

	channels := pe.Channels()
	if len(channels) != 2 || channels[0] != 0 || channels[1] != 2 {
		t.Errorf("Channels() = %v, want [0 2]", channels)
	}

	msg := pe.Error()
	for _, want := range []string{
		"probe at (-1,3)",
		"ClampToBorder",
		"expected (25, 229, 127, 204)",
		"observed (255, 229, 120, 204)",
		"tolerance 1",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
	if strings.Contains(msg, "99") {
		t.Errorf("Error() = %q includes an inactive axis", msg)
	}
}
