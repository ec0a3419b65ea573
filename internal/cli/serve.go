package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/gradgen/gradgen/pkg/gradient"
	gio "github.com/gradgen/gradgen/pkg/io"
	"github.com/gradgen/gradgen/pkg/server"
)

// newServeCmd creates the serve command for the browser preview.
func newServeCmd() *cobra.Command {
	var (
		addr       string
		configPath string
		storeFlags storeOpts
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live gradient preview over HTTP",
		Long: `Serve starts an HTTP server with a live gradient preview and a JSON
API for editing the working config. Presets saved through the API go to
the store selected with --store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg := gradient.Default()
			if configPath != "" {
				var err error
				cfg, err = gio.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}

			store, err := openStore(ctx, storeFlags)
			if err != nil {
				return err
			}
			defer store.Close()

			srv, err := server.New(cfg, store, logger)
			if err != nil {
				return err
			}

			printInfo("Preview at http://%s", addr)
			err = srv.ListenAndServe(ctx, addr)
			if errors.Is(err, context.Canceled) {
				logger.Debug("server stopped")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8533", "listen address")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "gradient config file (json, toml, yaml)")
	storeFlags.register(cmd)

	return cmd
}
