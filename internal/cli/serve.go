package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/AmanKumar245/crimewatch/internal/app"
	"github.com/AmanKumar245/crimewatch/internal/config"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API until interrupted.

Configuration is read from --config, then CONFIG_PATH, then ./config.yaml,
with environment variables taking precedence over the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var (
				cfg *config.Config
				err error
			)
			if configPath != "" {
				cfg, err = config.LoadFrom(configPath)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}
			return app.RunWithConfig(ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config YAML")
	return cmd
}
