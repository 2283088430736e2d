package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Color is an opaque RGB colour.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
)

// ParseColor reads a colour written as "#rrggbb" (the leading # is optional).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, errors.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.Wrapf(err, "color %q", s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText lets colours round-trip through JSON and flag.TextVar.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Gradient returns the colour of segment i out of n, blending linearly from
// start (i == 0) to end (i == n-1). A lone segment takes the end colour.
// Channels are rounded half away from zero.
func Gradient(start, end Color, i, n int) Color {
	if n <= 1 {
		return end
	}
	t := float64(i) / float64(n-1)
	return Color{
		R: lerp(start.R, end.R, t),
		G: lerp(start.G, end.G, t),
		B: lerp(start.B, end.B, t),
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
