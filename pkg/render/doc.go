// Package render generates markup artifacts from a gradient configuration.
//
// Three output formats are supported:
//
//   - [CSS]: a CSS background value such as
//     "linear-gradient(90deg, #667eea 0%, #764ba2 100%)"
//   - [SVG]: a standalone SVG document with the gradient as a <defs> entry
//     and, when noise is enabled, a turbulence/displacement filter applied
//     through a pattern indirection
//   - [HTML]: a self-contained HTML+CSS snippet with a placeholder element
//     whose background is the CSS gradient and whose filter references an
//     inline SVG filter definition
//
// All generators are pure: no I/O, no hidden state. CSS output is fully
// deterministic. SVG output embeds generated element identifiers so that
// several documents can coexist on one page; the identifier suffix comes
// from a process-wide counter by default and can be pinned with
// [WithIDSuffix] for reproducible output. The HTML snippet uses a fixed
// filter id because only one instance exists per fragment.
package render
