package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gradgen/gradgen/pkg/errors"
	"github.com/gradgen/gradgen/pkg/gradient"
)

func TestReadConfigJSON(t *testing.T) {
	src := `{
		"type": "linear",
		"angle": 45,
		"stops": [
			{"color": "#ff0000", "offset": 0},
			{"color": "#0000ff", "offset": 100}
		],
		"noise": {"enabled": true, "base_frequency": 0.02, "num_octaves": 4, "scale": 20}
	}`
	cfg, err := ReadConfig(strings.NewReader(src), ".json")
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if cfg.AngleDeg != 45 {
		t.Errorf("angle = %v, want 45", cfg.AngleDeg)
	}
	if !cfg.Noise.Enabled || cfg.Noise.NumOctaves != 4 {
		t.Errorf("noise = %+v, want enabled with 4 octaves", cfg.Noise)
	}
	for _, s := range cfg.Stops {
		if s.ID == "" {
			t.Error("expected normalization to assign stop IDs")
		}
	}
}

func TestReadConfigTOML(t *testing.T) {
	src := `
type = "radial"
angle = 0

[[stops]]
color = "#667eea"
offset = 0

[[stops]]
color = "#764ba2"
offset = 100
`
	cfg, err := ReadConfig(strings.NewReader(src), ".toml")
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if cfg.Type != gradient.TypeRadial {
		t.Errorf("type = %q, want radial", cfg.Type)
	}
}

func TestReadConfigYAML(t *testing.T) {
	src := `
type: linear
angle: 180
stops:
  - color: "#ffffff"
    offset: 0
  - color: "#000000"
    offset: 100
`
	cfg, err := ReadConfig(strings.NewReader(src), ".yml")
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if cfg.AngleDeg != 180 {
		t.Errorf("angle = %v, want 180", cfg.AngleDeg)
	}
}

func TestReadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		ext  string
		code errors.Code
	}{
		{"unknown format", "{}", ".ini", errors.ErrCodeInvalidFormat},
		{"malformed json", "{not json", ".json", errors.ErrCodeInvalidConfig},
		{"too few stops", `{"type":"linear","angle":0,"stops":[{"color":"#ffffff","offset":0}]}`, ".json", errors.ErrCodeMinStops},
		{"bad color", `{"type":"linear","angle":0,"stops":[{"color":"red","offset":0},{"color":"#000000","offset":100}]}`, ".json", errors.ErrCodeInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadConfig(strings.NewReader(tt.src), tt.ext)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	want, err := gradient.Default().Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if err := SaveConfig(want, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(got.Stops) != len(want.Stops) || got.Stops[0].Color != want.Stops[0].Color {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestRenderFormats(t *testing.T) {
	cfg := gradient.Default()

	css, err := Render(cfg, "css")
	if err != nil {
		t.Fatalf("Render css: %v", err)
	}
	if !strings.HasPrefix(string(css), "linear-gradient(") {
		t.Errorf("css = %q", css)
	}

	svg, err := Render(cfg, "svg")
	if err != nil {
		t.Fatalf("Render svg: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Errorf("svg output missing <svg element")
	}

	html, err := Render(cfg, "html")
	if err != nil {
		t.Fatalf("Render html: %v", err)
	}
	if !strings.Contains(string(html), "gradient-background") {
		t.Errorf("html output missing container class")
	}

	if _, err := Render(cfg, "png"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT for png, got %v", err)
	}
}

func TestExportDefaultName(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })

	path, err := Export(gradient.Default(), "html", "")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if path != DefaultHTMLName {
		t.Errorf("path = %q, want %q", path, DefaultHTMLName)
	}
	if _, err := os.Stat(filepath.Join(dir, DefaultHTMLName)); err != nil {
		t.Errorf("artifact not written: %v", err)
	}
}
