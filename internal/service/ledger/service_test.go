package ledger

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AmanKumar245/crimewatch/internal/adapter/memory/report"
	"github.com/AmanKumar245/crimewatch/internal/adapter/memory/team"
	"github.com/AmanKumar245/crimewatch/internal/config"
	"github.com/AmanKumar245/crimewatch/internal/domain"
	"github.com/AmanKumar245/crimewatch/internal/testutil"
)

//go:generate moq -out report_repo_mock_test.go -pkg ledger . reportRepo
//go:generate moq -out team_repo_mock_test.go -pkg ledger . teamRepo
//go:generate moq -out actor_source_mock_test.go -pkg ledger . actorSource

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

var testStart = time.Date(2023, 6, 15, 14, 30, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestService(reports reportRepo, teams teamRepo, actors actorSource, cfg config.LedgerConfig) (*Service, *testutil.FakeClock) {
	clock := testutil.NewFakeClock(testStart)
	svc := NewService(quietLogger(), reports, teams, actors, cfg)
	svc.now = clock.Now
	return svc, clock
}

// newMemoryService wires the service to real in-memory stores holding the
// demo roster.
func newMemoryService(t *testing.T, actors actorSource, cfg config.LedgerConfig) (*Service, *testutil.FakeClock, *report.Repo) {
	t.Helper()

	teams := team.New()
	require.NoError(t, teams.Load(context.Background(), []domain.ResponseTeam{
		{ID: "team-1", Name: "Rapid Response Unit", Members: []string{"Officer Johnson", "Officer Smith"}, Available: true},
		{ID: "team-2", Name: "Investigation Unit A", Members: []string{"Detective Brown", "Officer Davis"}, Available: true},
		{ID: "team-3", Name: "Patrol Team B", Members: []string{"Officer Wilson", "Officer Martinez"}, Available: true},
	}))
	reports := report.New()

	svc, clock := newTestService(reports, teams, actors, cfg)
	return svc, clock, reports
}

func signedIn(actor *domain.Actor) *actorSourceMock {
	return &actorSourceMock{
		CurrentActorFunc: func(ctx context.Context) *domain.Actor { return actor },
	}
}

func validSubmit() SubmitInput {
	return SubmitInput{
		ReporterEmail: "a@b.com",
		CrimeType:     domain.CrimeTypeTheft,
		Location:      domain.Coordinates{Lat: 40.7, Lng: -74.0},
		Address:       "123 Main St",
		OccurredAt:    testStart.Add(-time.Hour),
		Images:        []string{},
	}
}

func mustSubmit(t *testing.T, svc *Service, in SubmitInput) *domain.Report {
	t.Helper()
	r, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	return r
}
