// Package cli implements the crimewatch command line.
package cli

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/AmanKumar245/crimewatch/pkg/client"
	"github.com/spf13/cobra"
)

// DefaultServer is used when neither --server nor CRIMEWATCH_URL is set.
const DefaultServer = "http://localhost:8080"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Server  string
	Format  string // "text" | "json"
	Timeout time.Duration

	newClient func(baseURL string, opts ...client.Option) *client.Client
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of the crimewatch CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{newClient: client.New}

	server := os.Getenv("CRIMEWATCH_URL")
	if server == "" {
		server = DefaultServer
	}

	cmd := &cobra.Command{
		Use:   "crimewatch",
		Short: "CrimeWatch incident report ledger",
		Long: `CrimeWatch lets residents file incident reports and lets department
staff triage them, dispatch response teams and resolve them.

Run "crimewatch serve" to start the API; the other commands talk to a
running server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Server, "server", server, "API base URL (env CRIMEWATCH_URL)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 30*time.Second, "per-request timeout")

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewVersionCommand(opts))
	cmd.AddCommand(NewSessionCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewTeamsCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

func (o *RootOptions) client() *client.Client {
	return o.newClient(o.Server,
		client.WithTimeout(o.Timeout),
		client.WithRetries(2, 200*time.Millisecond),
	)
}
