package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gradgen/gradgen/pkg/gradient"
)

// CSS generates a CSS background value for the config.
//
// Linear gradients render as "linear-gradient(<angle>deg, <stops>)", radial
// gradients as "radial-gradient(circle, <stops>)" with the angle ignored.
// Stops are emitted in ascending-offset order as "<color> <offset>%" tokens.
func CSS(cfg gradient.Config) string {
	tokens := stopTokens(cfg)
	if cfg.Type == gradient.TypeRadial {
		return fmt.Sprintf("radial-gradient(circle, %s)", tokens)
	}
	return fmt.Sprintf("linear-gradient(%sdeg, %s)", formatNum(cfg.AngleDeg), tokens)
}

// stopTokens joins the stops as "<color> <offset>%" separated by ", ".
func stopTokens(cfg gradient.Config) string {
	parts := make([]string, len(cfg.Stops))
	for i, s := range cfg.Stops {
		parts[i] = fmt.Sprintf("%s %d%%", s.Color, s.Offset)
	}
	return strings.Join(parts, ", ")
}

// formatNum prints a float without a trailing fraction when it is whole,
// so an angle of 90 renders as "90deg" rather than "90.000000deg".
func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
