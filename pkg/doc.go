// Package pkg provides the core libraries for gradgen.
//
// # Overview
//
// gradgen turns a gradient configuration (type, angle, ordered color stops,
// optional procedural noise) into standalone markup artifacts: a CSS
// background value, a self-contained SVG document, or a combined HTML+CSS
// snippet. The pkg directory is organized around that flow:
//
//  1. [gradient] - The configuration model and its mutation operations
//  2. [render] - The generator (CSS, SVG, HTML emitters)
//  3. [preset] - Named saved configurations (memory, file, Redis, MongoDB)
//  4. [io] - Config file loading and artifact export
//  5. [server] - Local live-preview HTTP server
//
// # Architecture
//
// The typical data flow:
//
//	config file / preset / TUI edits
//	         ↓
//	    [gradient] package (validated Config, sorted stops)
//	         ↓
//	    [render] package (CSS / SVG / HTML generation)
//	         ↓
//	    terminal preview · browser preview · exported artifact
//
// # Quick Start
//
// Build a config and render it:
//
//	import (
//	    "github.com/gradgen/gradgen/pkg/gradient"
//	    "github.com/gradgen/gradgen/pkg/render"
//	)
//
//	cfg := gradient.Default()
//	cfg, _ = cfg.WithAngle(45)
//
//	css := render.CSS(cfg)
//	svg := render.SVG(cfg, render.WithIDSuffix("doc"))
//	html := render.HTML(cfg)
//
// # Main Packages
//
// [gradient] - Config, Stop, and Noise types. Mutations (AddStop, UpdateStop,
// RemoveStop, WithAngle, WithType, WithNoise) return new validated instances
// and keep stops sorted by offset; removal below two stops is a no-op.
//
// [render] - Pure generation functions. CSS output is deterministic; SVG and
// HTML output is deterministic up to generated element identifiers, which can
// be pinned with [render.WithIDSuffix].
//
// [preset] - Store interface with four backends: MemoryStore (testing),
// FileStore (CLI default, JSON under the user config dir), RedisStore, and
// MongoStore (shared deployments behind the preview server).
//
// [io] - Loads configs from JSON, TOML, or YAML files and writes the
// generated artifacts (gradient-background.svg, gradient-background.html).
//
// [server] - chi-based HTTP server exposing the current config and its
// rendered artifacts for live browser preview.
//
// [errors] - Structured error codes shared by the CLI and the server.
//
// # Testing
//
//	go test ./pkg/...        # All tests
//	go test -run Example     # Examples only
//
// [gradient]: https://pkg.go.dev/github.com/gradgen/gradgen/pkg/gradient
// [render]: https://pkg.go.dev/github.com/gradgen/gradgen/pkg/render
// [preset]: https://pkg.go.dev/github.com/gradgen/gradgen/pkg/preset
// [io]: https://pkg.go.dev/github.com/gradgen/gradgen/pkg/io
// [server]: https://pkg.go.dev/github.com/gradgen/gradgen/pkg/server
// [errors]: https://pkg.go.dev/github.com/gradgen/gradgen/pkg/errors
package pkg
