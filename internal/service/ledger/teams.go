package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

// ListTeams returns the full roster in seed order.
func (s *Service) ListTeams(ctx context.Context) ([]domain.ResponseTeam, error) {
	teams, err := s.teams.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("ledger.ListTeams: %w", err)
	}
	return teams, nil
}

// ListAvailableTeams returns the teams currently marked available.
func (s *Service) ListAvailableTeams(ctx context.Context) ([]domain.ResponseTeam, error) {
	teams, err := s.teams.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("ledger.ListAvailableTeams: %w", err)
	}
	return teams, nil
}

// SetTeamAvailability marks a team available or unavailable for dispatch.
// Existing assignments are not affected.
func (s *Service) SetTeamAvailability(ctx context.Context, teamID string, available bool) (*domain.ResponseTeam, error) {
	if teamID == "" {
		return nil, domain.NewValidationError("team_id", "required")
	}

	team, err := s.teams.SetAvailability(ctx, teamID, available)
	if err != nil {
		return nil, fmt.Errorf("ledger.SetTeamAvailability: %w", err)
	}

	s.log.InfoContext(ctx, "team availability changed",
		slog.String("team_id", team.ID),
		slog.Bool("available", team.Available),
	)
	return team, nil
}
