package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

// teamLoader is the roster side of the stores.
type teamLoader interface {
	Load(ctx context.Context, teams []domain.ResponseTeam) error
}

// reportCreator is the ledger side of the stores.
type reportCreator interface {
	Create(ctx context.Context, report *domain.Report) (*domain.Report, error)
}

// Result summarizes a seeding run.
type Result struct {
	Teams    int
	Reports  int
	Duration time.Duration
}

// Seeder loads a Dataset into the team roster and report ledger.
type Seeder struct {
	log     *slog.Logger
	teams   teamLoader
	reports reportCreator
}

// New creates a new Seeder.
func New(log *slog.Logger, teams teamLoader, reports reportCreator) *Seeder {
	return &Seeder{
		log:     log.With("component", "seeder"),
		teams:   teams,
		reports: reports,
	}
}

// Run loads the roster first so report team references resolve, then the
// reports in dataset order.
func (s *Seeder) Run(ctx context.Context, ds *Dataset) (Result, error) {
	start := time.Now()
	var res Result

	if err := ds.Validate(); err != nil {
		return res, fmt.Errorf("seeder.Run: %w", err)
	}

	teams := ds.DomainTeams()
	if err := s.teams.Load(ctx, teams); err != nil {
		return res, fmt.Errorf("seeder.Run load teams: %w", err)
	}
	res.Teams = len(teams)

	reports := ds.DomainReports()
	for i := range reports {
		if _, err := s.reports.Create(ctx, &reports[i]); err != nil {
			return res, fmt.Errorf("seeder.Run create %s: %w", reports[i].ID, err)
		}
		res.Reports++
	}

	res.Duration = time.Since(start)
	s.log.InfoContext(ctx, "seed data loaded",
		slog.Int("teams", res.Teams),
		slog.Int("reports", res.Reports),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}
