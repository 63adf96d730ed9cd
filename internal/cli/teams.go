package cli

import (
	"fmt"
	"strconv"

	"github.com/AmanKumar245/crimewatch/pkg/api"
	"github.com/spf13/cobra"
)

// NewTeamsCommand creates the teams command.
func NewTeamsCommand(opts *RootOptions) *cobra.Command {
	var availableOnly bool

	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List response teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := opts.client().ListTeams(cmd.Context(), availableOnly)
			if err != nil {
				return err
			}
			return newPrinter(cmd, opts).teams(teams)
		},
	}
	cmd.Flags().BoolVar(&availableOnly, "available", false, "only teams available for dispatch")

	cmd.AddCommand(&cobra.Command{
		Use:   "availability <team-id> <true|false>",
		Short: "Mark a team available or unavailable",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			available, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("availability must be true or false, got %q", args[1])
			}
			team, err := opts.client().SetTeamAvailability(cmd.Context(), args[0], available)
			if err != nil {
				return err
			}
			return newPrinter(cmd, opts).teams([]api.Team{*team})
		},
	})

	return cmd
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.client().Stats(cmd.Context())
			if err != nil {
				return err
			}
			return newPrinter(cmd, opts).stats(st)
		},
	}
}
