package render

import (
	"bytes"
	"fmt"

	"github.com/gradgen/gradgen/pkg/gradient"
)

// htmlFilterID is the fixed filter id used by the HTML snippet. The snippet
// is self-contained and holds at most one filter, so no unique suffix is
// needed.
const htmlFilterID = "noiseFilter"

// HTML generates a self-contained HTML+CSS snippet: a placeholder element
// styled with the CSS gradient as its background and, when noise is
// enabled, an inline SVG filter definition referenced through the CSS
// filter property.
//
// Unlike [SVG], which distorts the gradient's own pixels inside the SVG
// coordinate system, this variant applies the filter to the element as a
// whole. The two outputs are visually similar but not pixel-identical.
func HTML(cfg gradient.Config) []byte {
	var buf bytes.Buffer

	buf.WriteString(`<div class="gradient-background"></div>` + "\n")
	if cfg.Noise.Enabled {
		buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="0" height="0" style="position:absolute">` + "\n")
		buf.WriteString("  <defs>\n")
		writeNoiseFilter(&buf, cfg.Noise, htmlFilterID)
		buf.WriteString("  </defs>\n")
		buf.WriteString("</svg>\n")
	}

	buf.WriteString("<style>\n")
	buf.WriteString("  .gradient-background {\n")
	buf.WriteString("    width: 100%;\n")
	buf.WriteString("    height: 100vh;\n")
	fmt.Fprintf(&buf, "    background: %s;\n", CSS(cfg))
	if cfg.Noise.Enabled {
		fmt.Fprintf(&buf, "    filter: url(#%s);\n", htmlFilterID)
	}
	buf.WriteString("  }\n")
	buf.WriteString("</style>\n")
	return buf.Bytes()
}
