package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

// UpdateStatus moves a report to input.Status and optionally assigns a
// team. The read-modify-write runs atomically in the report store; a
// failed call leaves the report unchanged.
//
// Returns ErrNotFound for an unknown report and a ValidationError for an
// unknown status or team, or for a disallowed transition when strict
// transitions are enabled.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Report, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.TeamID != nil {
		if _, err := s.teams.GetByID(ctx, *input.TeamID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("team_id", "unknown team")
			}
			return nil, fmt.Errorf("ledger.UpdateStatus get team: %w", err)
		}
	}

	var previous domain.ReportStatus
	updated, err := s.reports.Update(ctx, input.ReportID, func(r *domain.Report) error {
		if s.strict {
			if err := checkTransition(r, input.Status, input.TeamID); err != nil {
				return err
			}
		}
		previous = r.Status
		r.ApplyStatus(input.Status, input.TeamID, s.now().UTC())
		return nil
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return nil, err
		}
		return nil, fmt.Errorf("ledger.UpdateStatus: %w", err)
	}

	attrs := []any{
		slog.String("report_id", updated.ID),
		slog.String("from", previous.String()),
		slog.String("to", updated.Status.String()),
	}
	if updated.AssignedTeam != nil {
		attrs = append(attrs, slog.String("team_id", *updated.AssignedTeam))
	}
	s.log.InfoContext(ctx, "report status updated", attrs...)

	return updated, nil
}
