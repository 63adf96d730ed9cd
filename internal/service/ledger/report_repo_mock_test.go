package ledger

import (
	"context"
	"sync"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	CreateFunc  func(ctx context.Context, report *domain.Report) (*domain.Report, error)
	GetByIDFunc func(ctx context.Context, id string) (*domain.Report, error)
	ListFunc    func(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error)
	UpdateFunc  func(ctx context.Context, id string, fn func(*domain.Report) error) (*domain.Report, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			Report *domain.Report
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ReportFilter
		}
		Update []struct {
			Ctx context.Context
			ID  string
			Fn  func(*domain.Report) error
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *reportRepoMock) Create(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	if mock.CreateFunc == nil {
		panic("reportRepoMock.CreateFunc: method is nil but reportRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Report *domain.Report
	}{Ctx: ctx, Report: report}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, report)
}

func (mock *reportRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	Report *domain.Report
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reportRepoMock) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	if mock.GetByIDFunc == nil {
		panic("reportRepoMock.GetByIDFunc: method is nil but reportRepo.GetByID was just called")
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

func (mock *reportRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *reportRepoMock) List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error) {
	if mock.ListFunc == nil {
		panic("reportRepoMock.ListFunc: method is nil but reportRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ReportFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *reportRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ReportFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *reportRepoMock) Update(ctx context.Context, id string, fn func(*domain.Report) error) (*domain.Report, error) {
	if mock.UpdateFunc == nil {
		panic("reportRepoMock.UpdateFunc: method is nil but reportRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
		Fn  func(*domain.Report) error
	}{Ctx: ctx, ID: id, Fn: fn}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, fn)
}

func (mock *reportRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  string
	Fn  func(*domain.Report) error
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
