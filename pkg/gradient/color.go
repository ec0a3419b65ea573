package gradient

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gradgen/gradgen/pkg/errors"
)

// RGB is a color in 8-bit RGB space, used for preview sampling.
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a "#rrggbb" color value.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return RGB{}, errors.New(errors.ErrCodeInvalidColor, "invalid hex color: %q", s)
	}
	var c RGB
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex color: %q", s)
	}
	return c, nil
}

// Blend linearly interpolates between a and b. t is clamped to [0,1].
func Blend(a, b RGB, t float64) RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return RGB{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B)}
}

// ColorAt samples the gradient color at position t in [0,1] along the axis.
// Positions before the first stop or after the last take that stop's color,
// matching how CSS and SVG extend gradient ends. Stops must be sorted, which
// every Config produced by this package guarantees.
func (c Config) ColorAt(t float64) RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	pos := t * 100

	first, _ := ParseHex(c.Stops[0].Color)
	if pos <= float64(c.Stops[0].Offset) {
		return first
	}
	for i := 1; i < len(c.Stops); i++ {
		lo, hi := c.Stops[i-1], c.Stops[i]
		if pos > float64(hi.Offset) {
			continue
		}
		a, _ := ParseHex(lo.Color)
		b, _ := ParseHex(hi.Color)
		span := float64(hi.Offset - lo.Offset)
		if span <= 0 {
			return b
		}
		return Blend(a, b, (pos-float64(lo.Offset))/span)
	}
	last, _ := ParseHex(c.Stops[len(c.Stops)-1].Color)
	return last
}

// RandomColor returns a pseudo-random hex color for newly added stops.
func RandomColor() string {
	return RGB{
		R: uint8(rand.Intn(256)),
		G: uint8(rand.Intn(256)),
		B: uint8(rand.Intn(256)),
	}.Hex()
}
