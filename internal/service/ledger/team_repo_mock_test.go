package ledger

import (
	"context"
	"sync"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

var _ teamRepo = &teamRepoMock{}

type teamRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id string) (*domain.ResponseTeam, error)
	ListFunc            func(ctx context.Context, availableOnly bool) ([]domain.ResponseTeam, error)
	SetAvailabilityFunc func(ctx context.Context, id string, available bool) (*domain.ResponseTeam, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		List []struct {
			Ctx           context.Context
			AvailableOnly bool
		}
		SetAvailability []struct {
			Ctx       context.Context
			ID        string
			Available bool
		}
	}
	lockGetByID         sync.RWMutex
	lockList            sync.RWMutex
	lockSetAvailability sync.RWMutex
}

func (mock *teamRepoMock) GetByID(ctx context.Context, id string) (*domain.ResponseTeam, error) {
	if mock.GetByIDFunc == nil {
		panic("teamRepoMock.GetByIDFunc: method is nil but teamRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *teamRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *teamRepoMock) List(ctx context.Context, availableOnly bool) ([]domain.ResponseTeam, error) {
	if mock.ListFunc == nil {
		panic("teamRepoMock.ListFunc: method is nil but teamRepo.List was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		AvailableOnly bool
	}{Ctx: ctx, AvailableOnly: availableOnly}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, availableOnly)
}

func (mock *teamRepoMock) ListCalls() []struct {
	Ctx           context.Context
	AvailableOnly bool
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *teamRepoMock) SetAvailability(ctx context.Context, id string, available bool) (*domain.ResponseTeam, error) {
	if mock.SetAvailabilityFunc == nil {
		panic("teamRepoMock.SetAvailabilityFunc: method is nil but teamRepo.SetAvailability was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        string
		Available bool
	}{Ctx: ctx, ID: id, Available: available}
	mock.lockSetAvailability.Lock()
	mock.calls.SetAvailability = append(mock.calls.SetAvailability, callInfo)
	mock.lockSetAvailability.Unlock()
	return mock.SetAvailabilityFunc(ctx, id, available)
}

func (mock *teamRepoMock) SetAvailabilityCalls() []struct {
	Ctx       context.Context
	ID        string
	Available bool
} {
	mock.lockSetAvailability.RLock()
	calls := mock.calls.SetAvailability
	mock.lockSetAvailability.RUnlock()
	return calls
}
