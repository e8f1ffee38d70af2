package cli

import (
	"github.com/spf13/cobra"

	"rollbook/internal/config"
)

// RootOptions holds flags that override the environment configuration.
type RootOptions struct {
	Addr     string
	DataFile string
	Driver   string
}

// NewRootCommand creates the rollbook command. Without a subcommand it serves HTTP.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:          "rollbook",
		Short:        "Student records kept in a JSON file, edited through a small web app",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Addr, "addr", "", "listen address (overrides ADDR)")
	cmd.PersistentFlags().StringVar(&opts.DataFile, "data", "", "student JSON file (overrides DATA_FILE)")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "store driver json|sqlite|postgres (overrides STORE_DRIVER)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// config loads the environment configuration and applies flag overrides.
func (o *RootOptions) config() *config.Config {
	cfg := config.Load()
	if o.Addr != "" {
		cfg.Addr = o.Addr
	}
	if o.DataFile != "" {
		cfg.DataFile = o.DataFile
	}
	if o.Driver != "" {
		cfg.Driver = o.Driver
	}
	cfg.SetupLogging()
	return cfg
}
