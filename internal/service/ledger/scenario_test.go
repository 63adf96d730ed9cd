package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmanKumar245/crimewatch/internal/config"
	"github.com/AmanKumar245/crimewatch/internal/domain"
)

// TestService_ReportLifecycle walks a theft report from submission to
// resolution with a team assignment on the way.
func TestService_ReportLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clock, _ := newMemoryService(t, nil, config.LedgerConfig{})
	t0 := time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC)

	submitted, err := svc.Submit(ctx, SubmitInput{
		CrimeType:     domain.CrimeTypeTheft,
		Location:      domain.Coordinates{Lat: 40.7, Lng: -74.0},
		Address:       "123 Main St",
		ReporterEmail: "a@b.com",
		OccurredAt:    t0,
		Images:        []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReportStatusPending, submitted.Status)
	assert.NotEmpty(t, submitted.ID)
	assert.Equal(t, testStart, submitted.CreatedAt)
	assert.Equal(t, domain.AnonymousActorID, submitted.ReporterID)

	clock.Advance(30 * time.Minute)
	inProgress, err := svc.UpdateStatus(ctx, UpdateStatusInput{
		ReportID: submitted.ID,
		Status:   domain.ReportStatusInProgress,
		TeamID:   ptr("team-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReportStatusInProgress, inProgress.Status)
	assert.Equal(t, ptr("team-1"), inProgress.AssignedTeam)
	assert.Nil(t, inProgress.ResolvedAt)

	now2 := clock.Advance(2 * time.Hour)
	resolved, err := svc.UpdateStatus(ctx, UpdateStatusInput{
		ReportID: submitted.ID,
		Status:   domain.ReportStatusResolved,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReportStatusResolved, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, now2, *resolved.ResolvedAt)
	assert.Equal(t, ptr("team-1"), resolved.AssignedTeam)
	assert.Equal(t, submitted.CreatedAt, resolved.CreatedAt)
	assert.Equal(t, t0, resolved.OccurredAt)
}
