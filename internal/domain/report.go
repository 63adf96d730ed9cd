package domain

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Coordinates is a WGS84 point picked on the incident map.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Valid reports whether c is a finite point within latitude/longitude bounds.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// String renders the point the way the report form fills the address
// field when no geocoded address is available.
func (c Coordinates) String() string {
	return fmt.Sprintf("Latitude: %.6f, Longitude: %.6f", c.Lat, c.Lng)
}

// Report is a single filed incident record.
//
// ResolvedAt is non-nil only while Status is resolved. CreatedAt never
// changes after submission; UpdatedAt moves on every mutation.
type Report struct {
	ID            string
	ReporterID    string
	ReporterEmail string
	CrimeType     CrimeType
	Description   *string
	Location      Coordinates
	Address       string
	OccurredAt    time.Time
	Images        []string
	Status        ReportStatus
	AssignedTeam  *string
	ResolvedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewReportID returns a fresh unique report id.
func NewReportID() string {
	return "report-" + uuid.NewString()
}

// Clone returns a deep copy of r that shares no mutable state with it.
func (r *Report) Clone() *Report {
	if r == nil {
		return nil
	}
	out := *r
	out.Images = slices.Clone(r.Images)
	if out.Images == nil {
		out.Images = []string{}
	}
	out.Description = clonePtr(r.Description)
	out.AssignedTeam = clonePtr(r.AssignedTeam)
	out.ResolvedAt = clonePtr(r.ResolvedAt)
	return &out
}

// ApplyStatus moves r to status at instant now, keeping ResolvedAt
// consistent: it is stamped on entering resolved, kept when r is already
// resolved, and cleared on leaving resolved. A non-nil teamID replaces the
// assignment regardless of the resulting status.
func (r *Report) ApplyStatus(status ReportStatus, teamID *string, now time.Time) {
	switch {
	case status == ReportStatusResolved && r.Status != ReportStatusResolved:
		r.ResolvedAt = &now
	case status == ReportStatusResolved && r.ResolvedAt == nil:
		r.ResolvedAt = &now
	case status != ReportStatusResolved:
		r.ResolvedAt = nil
	}

	r.Status = status
	if teamID != nil {
		team := *teamID
		r.AssignedTeam = &team
	}
	r.UpdatedAt = now
}

// ResponseTeam is a named response unit that can be assigned to reports.
type ResponseTeam struct {
	ID        string
	Name      string
	Members   []string
	Available bool
}

// Clone returns a deep copy of t.
func (t *ResponseTeam) Clone() *ResponseTeam {
	if t == nil {
		return nil
	}
	out := *t
	out.Members = slices.Clone(t.Members)
	return &out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
