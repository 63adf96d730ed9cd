package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/AmanKumar245/crimewatch/pkg/api"
	"github.com/spf13/cobra"
)

// printer renders command results as text tables or JSON.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(cmd *cobra.Command, opts *RootOptions) *printer {
	return &printer{w: cmd.OutOrStdout(), format: opts.Format}
}

func (p *printer) json() bool { return p.format == "json" }

func (p *printer) printJSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) linef(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) actor(a *api.Actor) error {
	if p.json() {
		return p.printJSON(api.Session{Actor: a})
	}
	if a == nil {
		p.linef("not signed in")
		return nil
	}
	p.linef("%s <%s> (%s)", a.DisplayName, a.Email, a.ID)
	return nil
}

func (p *printer) reports(reports []api.Report) error {
	if p.json() {
		return p.printJSON(api.ReportList{Reports: reports})
	}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tTYPE\tTEAM\tOCCURRED\tADDRESS")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Status, r.CrimeType, deref(r.AssignedTeam, "-"),
			r.OccurredAt.Format(time.RFC3339), r.Address)
	}
	return tw.Flush()
}

func (p *printer) report(r *api.Report) error {
	if p.json() {
		return p.printJSON(r)
	}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", r.ID)
	fmt.Fprintf(tw, "Status:\t%s\n", r.Status)
	fmt.Fprintf(tw, "Type:\t%s\n", r.CrimeType)
	fmt.Fprintf(tw, "Reporter:\t%s <%s>\n", r.ReporterID, r.ReporterEmail)
	fmt.Fprintf(tw, "Location:\t%.6f, %.6f\n", r.Location.Lat, r.Location.Lng)
	fmt.Fprintf(tw, "Address:\t%s\n", r.Address)
	fmt.Fprintf(tw, "Occurred:\t%s\n", r.OccurredAt.Format(time.RFC3339))
	fmt.Fprintf(tw, "Team:\t%s\n", deref(r.AssignedTeam, "-"))
	if r.Description != nil {
		fmt.Fprintf(tw, "Description:\t%s\n", *r.Description)
	}
	if len(r.Images) > 0 {
		fmt.Fprintf(tw, "Images:\t%s\n", strings.Join(r.Images, ", "))
	}
	if r.ResolvedAt != nil {
		fmt.Fprintf(tw, "Resolved:\t%s\n", r.ResolvedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(tw, "Updated:\t%s\n", r.UpdatedAt.Format(time.RFC3339))
	return tw.Flush()
}

func (p *printer) teams(teams []api.Team) error {
	if p.json() {
		return p.printJSON(api.TeamList{Teams: teams})
	}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tAVAILABLE\tMEMBERS")
	for _, t := range teams {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", t.ID, t.Name, t.Available, strings.Join(t.Members, ", "))
	}
	return tw.Flush()
}

func (p *printer) stats(s *api.Stats) error {
	if p.json() {
		return p.printJSON(s)
	}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total:\t%d\n", s.Total)
	fmt.Fprintf(tw, "Pending:\t%d\n", s.Pending)
	fmt.Fprintf(tw, "In progress:\t%d\n", s.InProgress)
	fmt.Fprintf(tw, "Resolved:\t%d\n", s.Resolved)
	fmt.Fprintf(tw, "Emergencies:\t%d\n", s.Emergencies)
	types := slices.Sorted(maps.Keys(s.ByCrimeType))
	for _, ct := range types {
		fmt.Fprintf(tw, "  %s:\t%d\n", ct, s.ByCrimeType[ct])
	}
	return tw.Flush()
}

func deref(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
