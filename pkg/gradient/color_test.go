package gradient

import (
	"testing"

	"github.com/gradgen/gradgen/pkg/errors"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input   string
		want    RGB
		wantErr bool
	}{
		{"#000000", RGB{0, 0, 0}, false},
		{"#ffffff", RGB{255, 255, 255}, false},
		{"#667eea", RGB{0x66, 0x7e, 0xea}, false},
		{"#FF00aa", RGB{0xff, 0x00, 0xaa}, false},
		{"667eea", RGB{}, true},
		{"#fff", RGB{}, true},
		{"#zzzzzz", RGB{}, true},
		{"", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, errors.ErrCodeInvalidColor) {
					t.Errorf("code = %v, want INVALID_COLOR", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{0x12, 0xab, 0xef}
	got, err := ParseHex(c.Hex())
	if err != nil {
		t.Fatalf("ParseHex(%q): %v", c.Hex(), err)
	}
	if got != c {
		t.Errorf("round trip: %+v != %+v", got, c)
	}
}

func TestBlend(t *testing.T) {
	black := RGB{0, 0, 0}
	white := RGB{255, 255, 255}

	if got := Blend(black, white, 0); got != black {
		t.Errorf("t=0: %+v", got)
	}
	if got := Blend(black, white, 1); got != white {
		t.Errorf("t=1: %+v", got)
	}
	mid := Blend(black, white, 0.5)
	if mid.R < 127 || mid.R > 128 {
		t.Errorf("t=0.5: %+v", mid)
	}
	// Out-of-range t clamps.
	if got := Blend(black, white, -2); got != black {
		t.Errorf("t=-2: %+v", got)
	}
	if got := Blend(black, white, 2); got != white {
		t.Errorf("t=2: %+v", got)
	}
}

func TestColorAt(t *testing.T) {
	cfg := Config{
		Type: TypeLinear,
		Stops: []Stop{
			{ID: "a", Color: "#000000", Offset: 20},
			{ID: "b", Color: "#ffffff", Offset: 80},
		},
	}

	// Before the first stop and after the last, the end color extends.
	if got := cfg.ColorAt(0); got != (RGB{0, 0, 0}) {
		t.Errorf("t=0: %+v", got)
	}
	if got := cfg.ColorAt(1); got != (RGB{255, 255, 255}) {
		t.Errorf("t=1: %+v", got)
	}
	mid := cfg.ColorAt(0.5)
	if mid.R < 127 || mid.R > 128 {
		t.Errorf("t=0.5: %+v", mid)
	}
}

func TestColorAtCoincidentStops(t *testing.T) {
	cfg := Config{
		Type: TypeLinear,
		Stops: []Stop{
			{ID: "a", Color: "#ff0000", Offset: 50},
			{ID: "b", Color: "#0000ff", Offset: 50},
		},
	}
	// Exactly at the shared offset the first stop wins; past it the
	// gradient is already the second stop's color.
	if got := cfg.ColorAt(0.5); got != (RGB{0xff, 0, 0}) {
		t.Errorf("at boundary: %+v", got)
	}
	if got := cfg.ColorAt(0.51); got != (RGB{0, 0, 0xff}) {
		t.Errorf("past boundary: %+v", got)
	}
}

func TestRandomColorParses(t *testing.T) {
	for i := 0; i < 20; i++ {
		c := RandomColor()
		if _, err := ParseHex(c); err != nil {
			t.Fatalf("RandomColor() = %q: %v", c, err)
		}
	}
}
