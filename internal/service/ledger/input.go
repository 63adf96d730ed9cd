package ledger

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

const (
	maxDescriptionLen = 5000
	maxAddressLen     = 500
	maxImages         = 20
	maxImageRefLen    = 2048
)

// SubmitInput holds the fields of a new incident report.
type SubmitInput struct {
	// ReporterID defaults to the current actor, or anonymous.
	ReporterID    string
	ReporterEmail string
	CrimeType     domain.CrimeType
	Description   *string
	Location      domain.Coordinates
	// Address defaults to the rendered coordinates.
	Address    string
	OccurredAt time.Time
	Images     []string
}

// Validate validates the submit input.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.ReporterEmail == "" {
		errs = append(errs, domain.FieldError{Field: "reporter_email", Message: "required"})
	} else if !domain.IsValidEmail(i.ReporterEmail) {
		errs = append(errs, domain.FieldError{Field: "reporter_email", Message: "invalid email format"})
	}

	if i.CrimeType == "" {
		errs = append(errs, domain.FieldError{Field: "crime_type", Message: "required"})
	} else if !i.CrimeType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "crime_type", Message: "unknown crime type"})
	}

	if !i.Location.Valid() {
		errs = append(errs, domain.FieldError{Field: "location", Message: "invalid coordinates"})
	}

	if i.OccurredAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "occurred_at", Message: "required"})
	}

	if i.Description != nil && utf8.RuneCountInString(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if utf8.RuneCountInString(i.Address) > maxAddressLen {
		errs = append(errs, domain.FieldError{Field: "address", Message: "too long"})
	}

	if len(i.Images) > maxImages {
		errs = append(errs, domain.FieldError{Field: "images", Message: "too many images"})
	}
	for idx, img := range i.Images {
		switch {
		case img == "":
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("images[%d]", idx), Message: "required"})
		case len(img) > maxImageRefLen:
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("images[%d]", idx), Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateStatusInput holds parameters for a status transition.
type UpdateStatusInput struct {
	ReportID string
	Status   domain.ReportStatus
	// TeamID, when set, replaces the assignment regardless of Status.
	TeamID *string
}

// Validate validates the update-status input. Team existence is checked
// by the service.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.ReportID == "" {
		errs = append(errs, domain.FieldError{Field: "report_id", Message: "required"})
	}

	if i.Status == "" {
		errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
	} else if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if i.TeamID != nil && *i.TeamID == "" {
		errs = append(errs, domain.FieldError{Field: "team_id", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EmergencyInput holds the location of a one-tap emergency report.
type EmergencyInput struct {
	Location domain.Coordinates
}

// Validate validates the emergency input.
func (i EmergencyInput) Validate() error {
	if !i.Location.Valid() {
		return domain.NewValidationError("location", "invalid coordinates")
	}
	return nil
}
