// Package io loads gradient configs from files and exports rendered
// artifacts. Config files may be JSON, TOML, or YAML, detected by
// extension.
package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gradgen/gradgen/pkg/errors"
	"github.com/gradgen/gradgen/pkg/gradient"
	"github.com/gradgen/gradgen/pkg/render"
)

// Default artifact file names used when no output path is given.
const (
	DefaultSVGName  = "gradient-background.svg"
	DefaultHTMLName = "gradient-background.html"
	DefaultCSSName  = "gradient-background.css"
)

// ReadConfig decodes a gradient config from r using the format implied
// by ext (".json", ".toml", ".yaml" or ".yml"). The decoded config is
// normalized before it is returned.
func ReadConfig(r io.Reader, ext string) (gradient.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return gradient.Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg gradient.Config
	switch strings.ToLower(ext) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return gradient.Config{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported config format %q", ext)
	}
	if err != nil {
		return gradient.Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s config", strings.TrimPrefix(ext, "."))
	}
	return cfg.Normalize()
}

// LoadConfig reads a gradient config from a JSON, TOML, or YAML file.
func LoadConfig(path string) (gradient.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return gradient.Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return gradient.Config{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadConfig(f, filepath.Ext(path))
}

// SaveConfig writes a gradient config as pretty-printed JSON at path.
func SaveConfig(cfg gradient.Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Render produces the artifact for format ("css", "svg", or "html").
func Render(cfg gradient.Config, format string, opts ...render.Option) ([]byte, error) {
	switch format {
	case "css":
		return []byte(render.CSS(cfg)), nil
	case "svg":
		return render.SVG(cfg, opts...), nil
	case "html":
		return render.HTML(cfg), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q, expected css, svg, or html", format)
	}
}

// DefaultName returns the conventional artifact file name for format.
func DefaultName(format string) string {
	switch format {
	case "svg":
		return DefaultSVGName
	case "html":
		return DefaultHTMLName
	default:
		return DefaultCSSName
	}
}

// Export renders cfg in the given format and writes the artifact to
// path. An empty path uses the format's default file name in the
// current directory.
func Export(cfg gradient.Config, format, path string, opts ...render.Option) (string, error) {
	data, err := Render(cfg, format, opts...)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = DefaultName(format)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
