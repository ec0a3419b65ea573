package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gradgen/gradgen/pkg/errors"
	"github.com/gradgen/gradgen/pkg/gradient"
	gio "github.com/gradgen/gradgen/pkg/io"
	"github.com/gradgen/gradgen/pkg/render"
)

const (
	formatCSS  = "css"
	formatSVG  = "svg"
	formatHTML = "html"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format   string // output format: "css", "svg", or "html"
	output   string // output file path; "-" or empty for stdout (css) / default name (svg, html)
	config   string // config file path (JSON, TOML, or YAML)
	preset   string // preset name to load instead of a config file
	idSuffix string // pin SVG element id suffix for reproducible output
	gradType string // gradient type override: "linear" or "radial"
	angle    float64
	stops    string // stop list override, e.g. "#667eea:0,#764ba2:100"
	noise    bool   // enable the noise texture
}

// newRenderCmd creates the render command for generating gradient artifacts.
//
// Default settings:
//   - format: css (printed to stdout)
//   - config: built-in two-stop purple gradient
//   - svg/html without --output: written to gradient-background.<ext>
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		format: formatCSS,
		angle:  -1,
	}
	var stores storeOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the gradient as CSS, SVG, or HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), &opts, stores)
		},
	}
	stores.register(cmd)

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: css (default), svg, html")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file; - for stdout")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "gradient config file (json, toml, yaml)")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "load a saved preset instead of a config file")
	cmd.Flags().StringVar(&opts.idSuffix, "id-suffix", "", "pin SVG element id suffix for reproducible output")
	cmd.Flags().StringVarP(&opts.gradType, "type", "t", "", "gradient type: linear, radial")
	cmd.Flags().Float64Var(&opts.angle, "angle", opts.angle, "gradient angle in degrees (linear only)")
	cmd.Flags().StringVar(&opts.stops, "stops", "", "color stops, e.g. \"#667eea:0,#764ba2:100\"")
	cmd.Flags().BoolVar(&opts.noise, "noise", false, "enable the noise texture")

	return cmd
}

func runRender(ctx context.Context, opts *renderOpts, stores storeOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadRenderConfig(ctx, opts, stores)
	if err != nil {
		return err
	}
	cfg, err = applyOverrides(cfg, opts)
	if err != nil {
		return err
	}

	var renderOpts []render.Option
	if opts.idSuffix != "" {
		renderOpts = append(renderOpts, render.WithIDSuffix(opts.idSuffix))
	}

	// CSS goes to stdout by default; documents get a file.
	if opts.output == "-" || (opts.output == "" && opts.format == formatCSS) {
		data, err := gio.Render(cfg, opts.format, renderOpts...)
		if err != nil {
			return err
		}
		fmt.Println(strings.TrimRight(string(data), "\n"))
		return nil
	}

	path, err := gio.Export(cfg, opts.format, opts.output, renderOpts...)
	if err != nil {
		return err
	}
	logger.Debug("artifact written", "format", opts.format, "path", path)
	printSuccess("Rendered %s gradient", cfg.Type)
	printFile(path)
	return nil
}

// loadRenderConfig resolves the starting config from --preset, --config,
// or the built-in default, in that order of precedence. Presets come from
// whichever backend the --store flags select.
func loadRenderConfig(ctx context.Context, opts *renderOpts, stores storeOpts) (gradient.Config, error) {
	if opts.preset != "" && opts.config != "" {
		return gradient.Config{}, errors.New(errors.ErrCodeInvalidConfig, "--preset and --config are mutually exclusive")
	}
	if opts.preset != "" {
		store, err := openStore(ctx, stores)
		if err != nil {
			return gradient.Config{}, err
		}
		defer store.Close()
		p, err := store.Get(ctx, opts.preset)
		if err != nil {
			return gradient.Config{}, err
		}
		return p.Config, nil
	}
	if opts.config != "" {
		return gio.LoadConfig(opts.config)
	}
	return gradient.Default(), nil
}

// applyOverrides layers the flag overrides on top of the loaded config.
func applyOverrides(cfg gradient.Config, opts *renderOpts) (gradient.Config, error) {
	var err error
	if opts.gradType != "" {
		cfg, err = cfg.WithType(gradient.Type(opts.gradType))
		if err != nil {
			return cfg, err
		}
	}
	if opts.angle >= 0 {
		cfg, err = cfg.WithAngle(opts.angle)
		if err != nil {
			return cfg, err
		}
	}
	if opts.stops != "" {
		stops, err := parseStops(opts.stops)
		if err != nil {
			return cfg, err
		}
		cfg.Stops = stops
	}
	if opts.noise {
		n := cfg.Noise
		n.Enabled = true
		cfg, err = cfg.WithNoise(n)
		if err != nil {
			return cfg, err
		}
	}
	return cfg.Normalize()
}

// parseStops parses a comma-separated stop list of "#rrggbb:offset"
// entries. The offset may be omitted, in which case stops are spread
// evenly from 0 to 100.
func parseStops(s string) ([]gradient.Stop, error) {
	parts := strings.Split(s, ",")
	stops := make([]gradient.Stop, 0, len(parts))
	explicit := false

	for _, part := range parts {
		part = strings.TrimSpace(part)
		color, offsetStr, hasOffset := strings.Cut(part, ":")
		stop := gradient.Stop{ID: gradient.NewStopID(), Color: color}
		if hasOffset {
			explicit = true
			n, err := strconv.Atoi(offsetStr)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidOffset, err, "stop offset %q", offsetStr)
			}
			stop.Offset = n
		}
		stops = append(stops, stop)
	}

	if !explicit && len(stops) > 1 {
		for i := range stops {
			stops[i].Offset = i * 100 / (len(stops) - 1)
		}
	}
	return stops, nil
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
