package cli

import (
	"github.com/AmanKumar245/crimewatch/internal/app"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newPrinter(cmd, opts)
			if out.json() {
				return out.printJSON(map[string]string{
					"version":   app.Version,
					"commit":    app.Commit,
					"buildTime": app.BuildTime,
				})
			}
			out.linef("crimewatch %s", app.BuildVersion())
			return nil
		},
	}
}
