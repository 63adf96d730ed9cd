package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmanKumar245/crimewatch/internal/config"
	"github.com/AmanKumar245/crimewatch/internal/domain"
)

func TestService_ListTeams(t *testing.T) {
	t.Parallel()

	svc, _, _ := newMemoryService(t, nil, config.LedgerConfig{})

	teams, err := svc.ListTeams(context.Background())

	require.NoError(t, err)
	require.Len(t, teams, 3)
	assert.Equal(t, "team-1", teams[0].ID)
	assert.Equal(t, []string{"Officer Johnson", "Officer Smith"}, teams[0].Members)
}

func TestService_SetTeamAvailability(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newMemoryService(t, nil, config.LedgerConfig{})

	team, err := svc.SetTeamAvailability(ctx, "team-2", false)
	require.NoError(t, err)
	assert.False(t, team.Available)

	available, err := svc.ListAvailableTeams(ctx)
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "team-1", available[0].ID)
	assert.Equal(t, "team-3", available[1].ID)

	all, err := svc.ListTeams(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = svc.SetTeamAvailability(ctx, "team-404", true)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.SetTeamAvailability(ctx, "", true)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_UnavailableTeamCanStillBeAssigned(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newMemoryService(t, nil, config.LedgerConfig{})
	_, err := svc.SetTeamAvailability(ctx, "team-1", false)
	require.NoError(t, err)
	r := mustSubmit(t, svc, validSubmit())

	got, err := svc.UpdateStatus(ctx, UpdateStatusInput{ReportID: r.ID, Status: domain.ReportStatusInProgress, TeamID: ptr("team-1")})

	require.NoError(t, err)
	assert.Equal(t, ptr("team-1"), got.AssignedTeam)
}

func TestService_ListAvailableTeams_UsesFilter(t *testing.T) {
	t.Parallel()

	teams := &teamRepoMock{
		ListFunc: func(ctx context.Context, availableOnly bool) ([]domain.ResponseTeam, error) {
			return []domain.ResponseTeam{}, nil
		},
	}
	svc, _ := newTestService(nil, teams, nil, config.LedgerConfig{})

	_, err := svc.ListAvailableTeams(context.Background())
	require.NoError(t, err)
	_, err = svc.ListTeams(context.Background())
	require.NoError(t, err)

	calls := teams.ListCalls()
	require.Len(t, calls, 2)
	assert.True(t, calls[0].AvailableOnly)
	assert.False(t, calls[1].AvailableOnly)
}
