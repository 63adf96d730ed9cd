package ledger

import (
	"context"
	"sync"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

var _ actorSource = &actorSourceMock{}

type actorSourceMock struct {
	CurrentActorFunc func(ctx context.Context) *domain.Actor

	calls struct {
		CurrentActor []struct {
			Ctx context.Context
		}
	}
	lockCurrentActor sync.RWMutex
}

func (mock *actorSourceMock) CurrentActor(ctx context.Context) *domain.Actor {
	if mock.CurrentActorFunc == nil {
		panic("actorSourceMock.CurrentActorFunc: method is nil but actorSource.CurrentActor was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCurrentActor.Lock()
	mock.calls.CurrentActor = append(mock.calls.CurrentActor, callInfo)
	mock.lockCurrentActor.Unlock()
	return mock.CurrentActorFunc(ctx)
}

func (mock *actorSourceMock) CurrentActorCalls() []struct {
	Ctx context.Context
} {
	mock.lockCurrentActor.RLock()
	calls := mock.calls.CurrentActor
	mock.lockCurrentActor.RUnlock()
	return calls
}
