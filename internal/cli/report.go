package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/AmanKumar245/crimewatch/pkg/api"
	"github.com/AmanKumar245/crimewatch/pkg/client"
	"github.com/spf13/cobra"
)

// NewReportCommand creates the report command group.
func NewReportCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "File, inspect and triage incident reports",
	}

	cmd.AddCommand(newReportSubmitCommand(opts))
	cmd.AddCommand(newReportEmergencyCommand(opts))
	cmd.AddCommand(newReportListCommand(opts))
	cmd.AddCommand(newReportGetCommand(opts))
	cmd.AddCommand(newReportStatusCommand(opts))

	return cmd
}

type submitFlags struct {
	reporterID  string
	email       string
	crimeType   string
	description string
	lat, lng    float64
	address     string
	occurredAt  string
	images      []string
}

func newReportSubmitCommand(opts *RootOptions) *cobra.Command {
	var f submitFlags

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "File a new incident report",
		Example: `  crimewatch report submit --email me@example.com --type theft \
    --lat 40.7128 --lng -74.006 --description "Bike stolen" --image https://img.example/1.jpg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			occurred := time.Now().UTC()
			if f.occurredAt != "" {
				t, err := time.Parse(time.RFC3339, f.occurredAt)
				if err != nil {
					return fmt.Errorf("--occurred-at: %w", err)
				}
				occurred = t
			}

			req := api.SubmitReportRequest{
				ReporterID:    f.reporterID,
				ReporterEmail: f.email,
				CrimeType:     f.crimeType,
				Location:      &api.Location{Lat: f.lat, Lng: f.lng},
				Address:       f.address,
				OccurredAt:    occurred,
				Images:        f.images,
			}
			if cmd.Flags().Changed("description") {
				req.Description = &f.description
			}

			r, err := opts.client().SubmitReport(cmd.Context(), req)
			if err != nil {
				return describe(err)
			}
			return newPrinter(cmd, opts).report(r)
		},
	}

	cmd.Flags().StringVar(&f.reporterID, "reporter", "", "reporter id (defaults to the signed-in actor)")
	cmd.Flags().StringVar(&f.email, "email", "", "reporter email")
	cmd.Flags().StringVar(&f.crimeType, "type", "", "crime type (theft|assault|vandalism|burglary|robbery|emergency|other)")
	cmd.Flags().StringVar(&f.description, "description", "", "free-text description")
	cmd.Flags().Float64Var(&f.lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&f.lng, "lng", 0, "longitude")
	cmd.Flags().StringVar(&f.address, "address", "", "street address (defaults to the coordinates)")
	cmd.Flags().StringVar(&f.occurredAt, "occurred-at", "", "RFC3339 time of the incident (defaults to now)")
	cmd.Flags().StringArrayVar(&f.images, "image", nil, "image URL, repeatable")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")

	return cmd
}

func newReportEmergencyCommand(opts *RootOptions) *cobra.Command {
	var lat, lng float64

	cmd := &cobra.Command{
		Use:   "emergency",
		Short: "File a one-tap emergency report as the signed-in actor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.client().ReportEmergency(cmd.Context(), api.Location{Lat: lat, Lng: lng})
			if err != nil {
				return describe(err)
			}
			return newPrinter(cmd, opts).report(r)
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")
	return cmd
}

func newReportListCommand(opts *RootOptions) *cobra.Command {
	var params client.ListReportsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reports in submission order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := opts.client().ListReports(cmd.Context(), params)
			if err != nil {
				return describe(err)
			}
			return newPrinter(cmd, opts).reports(reports)
		},
	}

	cmd.Flags().StringVar(&params.Reporter, "reporter", "", "only reports filed by this reporter id")
	cmd.Flags().StringVar(&params.Status, "status", "", "only reports in this status (pending|in-progress|resolved)")
	cmd.MarkFlagsMutuallyExclusive("reporter", "status")
	return cmd
}

func newReportGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <report-id>",
		Short: "Show a single report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.client().GetReport(cmd.Context(), args[0])
			if err != nil {
				return describe(err)
			}
			return newPrinter(cmd, opts).report(r)
		},
	}
}

func newReportStatusCommand(opts *RootOptions) *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "status <report-id> <pending|in-progress|resolved>",
		Short: "Move a report to a new status, optionally assigning a team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var teamID *string
			if cmd.Flags().Changed("team") {
				teamID = &team
			}
			r, err := opts.client().UpdateStatus(cmd.Context(), args[0], args[1], teamID)
			if err != nil {
				return describe(err)
			}
			return newPrinter(cmd, opts).report(r)
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "response team to assign")
	return cmd
}

// describe expands validation failures into one line per field.
func describe(err error) error {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || len(apiErr.Fields) < 2 {
		return err
	}
	msg := apiErr.Message
	for _, f := range apiErr.Fields {
		msg += fmt.Sprintf("\n  %s: %s", f.Field, f.Message)
	}
	return fmt.Errorf("%s: %w", msg, apiErr)
}
