package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/gradgen/gradgen/pkg/gradient"
)

func testConfig() gradient.Config {
	return gradient.Config{
		Type:     gradient.TypeLinear,
		AngleDeg: 90,
		Stops: []gradient.Stop{
			{ID: "a", Color: "#667eea", Offset: 0},
			{ID: "b", Color: "#764ba2", Offset: 100},
		},
		Noise: gradient.Noise{BaseFrequency: 0.01, NumOctaves: 3, Scale: 30},
	}
}

func noisyConfig() gradient.Config {
	cfg := testConfig()
	cfg.Noise.Enabled = true
	return cfg
}

// =============================================================================
// CSS
// =============================================================================

func TestCSSLinear(t *testing.T) {
	got := CSS(testConfig())
	want := "linear-gradient(90deg, #667eea 0%, #764ba2 100%)"
	if got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
}

func TestCSSRadialIgnoresAngle(t *testing.T) {
	cfg := testConfig()
	cfg.Type = gradient.TypeRadial
	cfg.AngleDeg = 123

	got := CSS(cfg)
	want := "radial-gradient(circle, #667eea 0%, #764ba2 100%)"
	if got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
}

func TestCSSFractionalAngle(t *testing.T) {
	cfg := testConfig()
	cfg.AngleDeg = 22.5
	if got := CSS(cfg); !strings.HasPrefix(got, "linear-gradient(22.5deg,") {
		t.Errorf("CSS() = %q", got)
	}
}

func TestCSSManyStops(t *testing.T) {
	cfg := testConfig()
	cfg.Stops = []gradient.Stop{
		{ID: "a", Color: "#ff0000", Offset: 0},
		{ID: "b", Color: "#00ff00", Offset: 50},
		{ID: "c", Color: "#0000ff", Offset: 100},
	}
	got := CSS(cfg)
	want := "linear-gradient(90deg, #ff0000 0%, #00ff00 50%, #0000ff 100%)"
	if got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
}

func ExampleCSS() {
	cfg := gradient.Config{
		Type:     gradient.TypeLinear,
		AngleDeg: 90,
		Stops: []gradient.Stop{
			{ID: "a", Color: "#667eea", Offset: 0},
			{ID: "b", Color: "#764ba2", Offset: 100},
		},
	}
	fmt.Println(CSS(cfg))
	// Output: linear-gradient(90deg, #667eea 0%, #764ba2 100%)
}

// =============================================================================
// SVG
// =============================================================================

func TestSVGLinearEndpoints(t *testing.T) {
	tests := []struct {
		angle float64
		want  string
	}{
		// 0° points up: start at the bottom, end at the top.
		{0, `x1="50%" y1="100%" x2="50%" y2="0%"`},
		// 90° points right: left to right.
		{90, `x1="0%" y1="50%" x2="100%" y2="50%"`},
		{180, `x1="50%" y1="0%" x2="50%" y2="100%"`},
		{270, `x1="100%" y1="50%" x2="0%" y2="50%"`},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%gdeg", tt.angle), func(t *testing.T) {
			cfg := testConfig()
			cfg.AngleDeg = tt.angle
			out := string(SVG(cfg))
			if !strings.Contains(out, tt.want) {
				t.Errorf("SVG at %g° missing %q:\n%s", tt.angle, tt.want, out)
			}
		})
	}
}

func TestSVGDiagonalEndpoints(t *testing.T) {
	cfg := testConfig()
	cfg.AngleDeg = 45
	out := string(SVG(cfg))
	// At 45° each component is 50/sqrt(2) ≈ 35.36 from the center.
	if !strings.Contains(out, `x1="14.64%" y1="85.36%" x2="85.36%" y2="14.64%"`) {
		t.Errorf("SVG at 45°:\n%s", out)
	}
}

func TestSVGStops(t *testing.T) {
	out := string(SVG(testConfig()))
	for _, want := range []string{
		`<stop offset="0%" stop-color="#667eea"/>`,
		`<stop offset="100%" stop-color="#764ba2"/>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q:\n%s", want, out)
		}
	}
}

func TestSVGRadial(t *testing.T) {
	cfg := testConfig()
	cfg.Type = gradient.TypeRadial
	out := string(SVG(cfg))
	if !strings.Contains(out, `<radialGradient`) {
		t.Error("missing radialGradient element")
	}
	if !strings.Contains(out, `cx="50%" cy="50%" r="50%"`) {
		t.Error("radial gradient not centered")
	}
	if strings.Contains(out, "<linearGradient") {
		t.Error("unexpected linearGradient element")
	}
}

func TestSVGWithoutNoise(t *testing.T) {
	out := string(SVG(testConfig(), WithIDSuffix("t")))
	for _, banned := range []string{"<filter", "feTurbulence", "feDisplacementMap", "<pattern"} {
		if strings.Contains(out, banned) {
			t.Errorf("noise disabled but output contains %q", banned)
		}
	}
	if !strings.Contains(out, `<rect x="0" y="0" width="100%" height="100%" fill="url(#gradient-t)"/>`) {
		t.Errorf("rect not filled with the gradient:\n%s", out)
	}
}

func TestSVGWithNoise(t *testing.T) {
	out := string(SVG(noisyConfig(), WithIDSuffix("t")))

	for _, want := range []string{
		`<filter id="noise-t" x="-50%" y="-50%" width="200%" height="200%">`,
		`<feTurbulence type="turbulence" baseFrequency="0.01" numOctaves="3" result="noise"/>`,
		`<feDisplacementMap in="SourceGraphic" in2="noise" scale="30" xChannelSelector="R" yChannelSelector="G"/>`,
		`patternUnits="userSpaceOnUse"`,
		`fill="url(#gradient-t)" filter="url(#noise-t)"`,
		`fill="url(#pattern-t)"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q:\n%s", want, out)
		}
	}
}

func TestSVGIDSuffixDeterminism(t *testing.T) {
	cfg := noisyConfig()
	a := SVG(cfg, WithIDSuffix("pin"))
	b := SVG(cfg, WithIDSuffix("pin"))
	if !bytes.Equal(a, b) {
		t.Error("same suffix should give byte-identical output")
	}

	// Consecutive calls without a pinned suffix must not collide.
	c := string(SVG(cfg))
	d := string(SVG(cfg))
	if c == d {
		t.Error("auto ids should differ between calls")
	}
}

// =============================================================================
// HTML
// =============================================================================

func TestHTMLWithoutNoise(t *testing.T) {
	out := string(HTML(testConfig()))

	if !strings.Contains(out, `<div class="gradient-background"></div>`) {
		t.Error("missing placeholder element")
	}
	if !strings.Contains(out, "background: linear-gradient(90deg, #667eea 0%, #764ba2 100%);") {
		t.Errorf("missing background declaration:\n%s", out)
	}
	if strings.Contains(out, "filter") {
		t.Error("noise disabled but output references a filter")
	}
}

func TestHTMLWithNoise(t *testing.T) {
	out := string(HTML(noisyConfig()))

	for _, want := range []string{
		`<filter id="noiseFilter"`,
		"feTurbulence",
		"feDisplacementMap",
		"filter: url(#noiseFilter);",
		`width="0" height="0"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML missing %q:\n%s", want, out)
		}
	}
}

func TestHTMLIsDeterministic(t *testing.T) {
	cfg := noisyConfig()
	if !bytes.Equal(HTML(cfg), HTML(cfg)) {
		t.Error("HTML output should not depend on call order")
	}
}
