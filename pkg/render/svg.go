package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/gradgen/gradgen/pkg/gradient"
)

// SVG generates a standalone SVG document for the config.
//
// Linear gradient endpoints are derived from the angle by rotating a unit
// vector: 0° points up, increasing clockwise, matching CSS angle semantics.
// The endpoints sit symmetric about the center at 50% radius.
//
// With noise enabled the gradient is rendered into an intermediate rect, a
// turbulence + displacement filter (with a 200% oversized region so the
// distortion does not clip at the viewport edge) is applied to that rect,
// and the filtered result is wrapped in a repeating pattern that fills the
// final full-size rect. Without noise the gradient fills a single rect
// directly.
func SVG(cfg gradient.Config, opts ...Option) []byte {
	o := newOptions(opts...)

	gradID := "gradient-" + o.idSuffix
	filterID := "noise-" + o.idSuffix
	patternID := "pattern-" + o.idSuffix

	var buf bytes.Buffer
	buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="100%" height="100%">` + "\n")
	buf.WriteString("  <defs>\n")
	writeGradientDef(&buf, cfg, gradID)
	if cfg.Noise.Enabled {
		writeNoiseFilter(&buf, cfg.Noise, filterID)
		fmt.Fprintf(&buf, `    <pattern id="%s" x="0" y="0" width="100%%" height="100%%" patternUnits="userSpaceOnUse">`+"\n", patternID)
		fmt.Fprintf(&buf, `      <rect x="0" y="0" width="100%%" height="100%%" fill="url(#%s)" filter="url(#%s)"/>`+"\n", gradID, filterID)
		buf.WriteString("    </pattern>\n")
	}
	buf.WriteString("  </defs>\n")

	fill := gradID
	if cfg.Noise.Enabled {
		fill = patternID
	}
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="100%%" height="100%%" fill="url(#%s)"/>`+"\n", fill)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// writeGradientDef emits the <linearGradient> or <radialGradient> element.
func writeGradientDef(buf *bytes.Buffer, cfg gradient.Config, id string) {
	if cfg.Type == gradient.TypeRadial {
		fmt.Fprintf(buf, `    <radialGradient id="%s" cx="50%%" cy="50%%" r="50%%">`+"\n", id)
		writeStops(buf, cfg.Stops)
		buf.WriteString("    </radialGradient>\n")
		return
	}

	x1, y1, x2, y2 := linearEndpoints(cfg.AngleDeg)
	fmt.Fprintf(buf, `    <linearGradient id="%s" x1="%s%%" y1="%s%%" x2="%s%%" y2="%s%%">`+"\n",
		id, pct(x1), pct(y1), pct(x2), pct(y2))
	writeStops(buf, cfg.Stops)
	buf.WriteString("    </linearGradient>\n")
}

func writeStops(buf *bytes.Buffer, stops []gradient.Stop) {
	for _, s := range stops {
		fmt.Fprintf(buf, `      <stop offset="%d%%" stop-color="%s"/>`+"\n", s.Offset, s.Color)
	}
}

// writeNoiseFilter emits the turbulence → displacement filter chain.
// The filter region is 200% of the bounding box, centered, so displaced
// pixels near the edges still have source pixels to sample from.
func writeNoiseFilter(buf *bytes.Buffer, n gradient.Noise, id string) {
	fmt.Fprintf(buf, `    <filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%">`+"\n", id)
	fmt.Fprintf(buf, `      <feTurbulence type="turbulence" baseFrequency="%s" numOctaves="%d" result="noise"/>`+"\n",
		formatNum(n.BaseFrequency), n.NumOctaves)
	fmt.Fprintf(buf, `      <feDisplacementMap in="SourceGraphic" in2="noise" scale="%s" xChannelSelector="R" yChannelSelector="G"/>`+"\n",
		formatNum(n.Scale))
	buf.WriteString("    </filter>\n")
}

// linearEndpoints converts a CSS-style angle (0° up, clockwise) into start
// and end coordinates in percent of the bounding box. The start point is
// opposite the angle direction so the gradient runs toward the angle.
func linearEndpoints(angleDeg float64) (x1, y1, x2, y2 float64) {
	rad := (angleDeg - 90) * math.Pi / 180
	dx, dy := 50*math.Cos(rad), 50*math.Sin(rad)
	return 50 - dx, 50 - dy, 50 + dx, 50 + dy
}

// pct formats an endpoint coordinate, rounded so values that are whole after
// the trigonometry (e.g. cos(-90°) ≈ 6e-17) print as clean integers.
func pct(v float64) string {
	return formatNum(math.Round(v*100) / 100)
}
