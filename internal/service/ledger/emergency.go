package ledger

import (
	"context"
	"fmt"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

const (
	emergencyDescription = "Emergency button pressed - immediate assistance required"
	emergencyAddress     = "Current location (GPS coordinates)"
)

// ReportEmergency files an emergency report at the caller's location on
// behalf of the signed-in actor. Returns ErrUnauthorized when nobody is
// signed in.
func (s *Service) ReportEmergency(ctx context.Context, input EmergencyInput) (*domain.Report, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor := s.currentActor(ctx)
	if actor == nil {
		return nil, fmt.Errorf("ledger.ReportEmergency: %w", domain.ErrUnauthorized)
	}

	desc := emergencyDescription
	return s.Submit(ctx, SubmitInput{
		ReporterID:    actor.ID,
		ReporterEmail: actor.Email,
		CrimeType:     domain.CrimeTypeEmergency,
		Description:   &desc,
		Location:      input.Location,
		Address:       emergencyAddress,
		OccurredAt:    s.now().UTC(),
		Images:        []string{},
	})
}
