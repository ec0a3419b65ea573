package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gradgen/gradgen/pkg/errors"
	gio "github.com/gradgen/gradgen/pkg/io"
	"github.com/gradgen/gradgen/pkg/preset"
	"github.com/gradgen/gradgen/pkg/render"
)

// Preset store backends selectable with --store.
const (
	storeFile  = "file"
	storeRedis = "redis"
	storeMongo = "mongo"
)

// storeOpts holds the backend selection flags shared by the preset
// subcommands and the serve command.
type storeOpts struct {
	backend   string // "file", "redis", or "mongo"
	redisAddr string
	mongoURI  string
}

func (o *storeOpts) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.backend, "store", storeFile, "preset store backend: file (default), redis, mongo")
	cmd.PersistentFlags().StringVar(&o.redisAddr, "redis-addr", "localhost:6379", "redis address for --store redis")
	cmd.PersistentFlags().StringVar(&o.mongoURI, "mongo-uri", "mongodb://localhost:27017", "mongodb uri for --store mongo")
}

// openStore opens the preset store selected by the flags. The caller
// owns the returned store and must Close it.
func openStore(ctx context.Context, opts storeOpts) (preset.Store, error) {
	switch opts.backend {
	case storeFile, "":
		return preset.NewFileStore("")
	case storeRedis:
		return preset.NewRedisStore(ctx, opts.redisAddr)
	case storeMongo:
		return preset.NewMongoStore(ctx, opts.mongoURI)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown store backend %q", opts.backend)
	}
}

// newPresetCmd creates the preset command group for managing named
// gradient configurations.
func newPresetCmd() *cobra.Command {
	var opts storeOpts

	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage named gradient presets",
	}
	opts.register(cmd)

	cmd.AddCommand(newPresetListCmd(&opts))
	cmd.AddCommand(newPresetShowCmd(&opts))
	cmd.AddCommand(newPresetSaveCmd(&opts))
	cmd.AddCommand(newPresetDeleteCmd(&opts))

	return cmd
}

func newPresetListCmd(opts *storeOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			defer store.Close()

			presets, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(presets) == 0 {
				printInfo("No presets saved yet")
				return nil
			}
			for _, p := range presets {
				swatch := gradientSwatch(p.Config, 16)
				desc := fmt.Sprintf("%s, %d stops", p.Config.Type, len(p.Config.Stops))
				if p.Config.Noise.Enabled {
					desc += ", noise"
				}
				fmt.Printf("%s  %s  %s\n", swatch, StyleValue.Render(p.Name), StyleDim.Render(desc))
			}
			return nil
		},
	}
}

func newPresetShowCmd(opts *storeOpts) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a preset's config and CSS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			defer store.Close()

			p, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			}

			fmt.Println(gradientSwatch(p.Config, 48))
			printKeyValue("name", p.Name)
			printKeyValue("type", string(p.Config.Type))
			printKeyValue("angle", fmt.Sprintf("%g°", p.Config.AngleDeg))
			for _, s := range p.Config.Stops {
				printKeyValue("stop", fmt.Sprintf("%s at %d%%", s.Color, s.Offset))
			}
			if p.Config.Noise.Enabled {
				printKeyValue("noise", fmt.Sprintf("freq %g, %d octaves, scale %g",
					p.Config.Noise.BaseFrequency, p.Config.Noise.NumOctaves, p.Config.Noise.Scale))
			}
			printKeyValue("css", render.CSS(p.Config))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the preset as JSON")
	return cmd
}

func newPresetSaveCmd(opts *storeOpts) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a gradient config as a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gio.LoadConfig(configPath)
			if err != nil {
				return err
			}
			p, err := preset.New(args[0], cfg)
			if err != nil {
				return err
			}

			store, err := openStore(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Save(cmd.Context(), p); err != nil {
				return err
			}
			printSuccess("Saved preset %s", StyleHighlight.Render(p.Name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "gradient config file to save (json, toml, yaml)")
	cmd.MarkFlagRequired("config")
	return cmd
}

func newPresetDeleteCmd(opts *storeOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted preset %s", StyleHighlight.Render(args[0]))
			return nil
		},
	}
}
