// Package seeder loads the demo team roster and reports into the stores.
package seeder

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

//go:embed demo.yaml
var demoYAML []byte

// Dataset is the on-disk shape of seed data.
type Dataset struct {
	Teams   []TeamRecord   `yaml:"teams"`
	Reports []ReportRecord `yaml:"reports"`
}

// TeamRecord is one roster entry.
type TeamRecord struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Members   []string `yaml:"members"`
	Available bool     `yaml:"available"`
}

// ReportRecord is one pre-filed report, stored exactly as given.
type ReportRecord struct {
	ID            string     `yaml:"id"`
	ReporterID    string     `yaml:"reporter_id"`
	ReporterEmail string     `yaml:"reporter_email"`
	CrimeType     string     `yaml:"crime_type"`
	Description   *string    `yaml:"description"`
	Location      Location   `yaml:"location"`
	Address       string     `yaml:"address"`
	OccurredAt    time.Time  `yaml:"occurred_at"`
	Images        []string   `yaml:"images"`
	Status        string     `yaml:"status"`
	AssignedTeam  *string    `yaml:"assigned_team"`
	ResolvedAt    *time.Time `yaml:"resolved_at"`
	CreatedAt     time.Time  `yaml:"created_at"`
	UpdatedAt     time.Time  `yaml:"updated_at"`
}

// Location is a lat/lng pair.
type Location struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

// Demo returns the built-in demo dataset.
func Demo() (*Dataset, error) {
	ds, err := Parse(demoYAML)
	if err != nil {
		return nil, fmt.Errorf("seeder: demo dataset: %w", err)
	}
	return ds, nil
}

// LoadFile reads and validates a dataset from a YAML file.
func LoadFile(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seeder: read %s: %w", path, err)
	}
	ds, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("seeder: %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes and validates a YAML dataset.
func Parse(raw []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks every record against the ledger invariants so that a
// bad dataset is rejected before anything is loaded.
func (ds *Dataset) Validate() error {
	var errs []domain.FieldError
	add := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: field, Message: msg})
	}

	teams := make(map[string]bool, len(ds.Teams))
	for i, t := range ds.Teams {
		field := fmt.Sprintf("teams[%d]", i)
		switch {
		case t.ID == "":
			add(field+".id", "required")
		case teams[t.ID]:
			add(field+".id", "duplicate id")
		}
		if t.Name == "" {
			add(field+".name", "required")
		}
		teams[t.ID] = true
	}

	reports := make(map[string]bool, len(ds.Reports))
	for i, r := range ds.Reports {
		field := fmt.Sprintf("reports[%d]", i)
		switch {
		case r.ID == "":
			add(field+".id", "required")
		case reports[r.ID]:
			add(field+".id", "duplicate id")
		}
		reports[r.ID] = true

		if !domain.IsValidEmail(r.ReporterEmail) {
			add(field+".reporter_email", "invalid email format")
		}
		if !domain.CrimeType(r.CrimeType).IsValid() {
			add(field+".crime_type", "unknown crime type")
		}
		if !(domain.Coordinates{Lat: r.Location.Lat, Lng: r.Location.Lng}).Valid() {
			add(field+".location", "invalid coordinates")
		}

		status := domain.ReportStatus(r.Status)
		if !status.IsValid() {
			add(field+".status", "unknown status")
		}
		if (status == domain.ReportStatusResolved) != (r.ResolvedAt != nil) {
			add(field+".resolved_at", "must be set exactly when status is resolved")
		}
		if r.AssignedTeam != nil && !teams[*r.AssignedTeam] {
			add(field+".assigned_team", "unknown team")
		}
		if r.CreatedAt.IsZero() {
			add(field+".created_at", "required")
		}
		if r.UpdatedAt.Before(r.CreatedAt) {
			add(field+".updated_at", "must not precede created_at")
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DomainTeams converts the roster to domain values.
func (ds *Dataset) DomainTeams() []domain.ResponseTeam {
	out := make([]domain.ResponseTeam, 0, len(ds.Teams))
	for _, t := range ds.Teams {
		out = append(out, domain.ResponseTeam{
			ID:        t.ID,
			Name:      t.Name,
			Members:   append([]string(nil), t.Members...),
			Available: t.Available,
		})
	}
	return out
}

// DomainReports converts the reports to domain values.
func (ds *Dataset) DomainReports() []domain.Report {
	out := make([]domain.Report, 0, len(ds.Reports))
	for _, r := range ds.Reports {
		report := domain.Report{
			ID:            r.ID,
			ReporterID:    r.ReporterID,
			ReporterEmail: r.ReporterEmail,
			CrimeType:     domain.CrimeType(r.CrimeType),
			Description:   r.Description,
			Location:      domain.Coordinates{Lat: r.Location.Lat, Lng: r.Location.Lng},
			Address:       r.Address,
			OccurredAt:    r.OccurredAt,
			Images:        r.Images,
			Status:        domain.ReportStatus(r.Status),
			AssignedTeam:  r.AssignedTeam,
			ResolvedAt:    r.ResolvedAt,
			CreatedAt:     r.CreatedAt,
			UpdatedAt:     r.UpdatedAt,
		}
		out = append(out, *report.Clone())
	}
	return out
}
