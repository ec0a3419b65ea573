package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gradgen/gradgen/pkg/gradient"
	gio "github.com/gradgen/gradgen/pkg/io"
)

// newEditCmd creates the edit command for the interactive terminal editor.
func newEditCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a gradient interactively in the terminal",
		Long: `Edit opens a terminal editor with a live approximation of the gradient.
Stops, angle, type, and noise can be adjusted with the keyboard; the
current artifact can be copied to the clipboard or written to a file
without leaving the editor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg := gradient.Default()
			if configPath != "" {
				if !fileExists(configPath) {
					logger.Warn("config file not found, starting from default", "path", configPath)
				} else {
					var err error
					cfg, err = gio.LoadConfig(configPath)
					if err != nil {
						return err
					}
				}
			}

			model := newEditorModel(cfg)
			final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			if err != nil {
				return err
			}

			// Print the artifact for the last state so the session's work
			// survives quitting the editor.
			if m, ok := final.(editorModel); ok {
				data, err := gio.Render(m.cfg, m.format)
				if err != nil {
					return err
				}
				cmd.Println(string(data))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "gradient config file to start from (json, toml, yaml)")
	return cmd
}
