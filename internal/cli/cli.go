// Package cli implements the gradgen command-line interface.
//
// This package provides commands for rendering gradient backgrounds as
// CSS, SVG, or HTML artifacts, editing a gradient interactively in the
// terminal, serving a live browser preview, and managing named presets.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate the CSS declaration, SVG document, or HTML snippet
//   - edit: Interactive terminal editor with a live color preview
//   - serve: HTTP preview server with a JSON editing API
//   - preset: Save, list, show, and delete named gradient configs
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gradgen/gradgen/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "gradgen"

// Execute runs the gradgen CLI and returns an error if any command fails.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Gradgen generates gradient backgrounds with optional noise",
		Long:         `Gradgen is a CLI tool for generating colorful gradient backgrounds as CSS declarations, standalone SVG documents, or HTML snippets, with an optional turbulence noise texture.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newEditCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newPresetCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
