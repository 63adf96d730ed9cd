package identity

import (
	"context"
	"sync"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

var _ sessionSlot = &sessionSlotMock{}

type sessionSlotMock struct {
	ClearFunc func(ctx context.Context) error
	LoadFunc  func(ctx context.Context) (*domain.Actor, error)
	SaveFunc  func(ctx context.Context, actor *domain.Actor) error

	calls struct {
		Clear []struct {
			Ctx context.Context
		}
		Load []struct {
			Ctx context.Context
		}
		Save []struct {
			Ctx   context.Context
			Actor *domain.Actor
		}
	}
	lockClear sync.RWMutex
	lockLoad  sync.RWMutex
	lockSave  sync.RWMutex
}

func (mock *sessionSlotMock) Clear(ctx context.Context) error {
	if mock.ClearFunc == nil {
		panic("sessionSlotMock.ClearFunc: method is nil but sessionSlot.Clear was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, callInfo)
	mock.lockClear.Unlock()
	return mock.ClearFunc(ctx)
}

func (mock *sessionSlotMock) ClearCalls() []struct {
	Ctx context.Context
} {
	mock.lockClear.RLock()
	calls := mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}

func (mock *sessionSlotMock) Load(ctx context.Context) (*domain.Actor, error) {
	if mock.LoadFunc == nil {
		panic("sessionSlotMock.LoadFunc: method is nil but sessionSlot.Load was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx)
}

func (mock *sessionSlotMock) LoadCalls() []struct {
	Ctx context.Context
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *sessionSlotMock) Save(ctx context.Context, actor *domain.Actor) error {
	if mock.SaveFunc == nil {
		panic("sessionSlotMock.SaveFunc: method is nil but sessionSlot.Save was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor *domain.Actor
	}{Ctx: ctx, Actor: actor}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, actor)
}

func (mock *sessionSlotMock) SaveCalls() []struct {
	Ctx   context.Context
	Actor *domain.Actor
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
