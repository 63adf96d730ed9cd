package identity

import (
	"context"
	"sync"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

var _ authProvider = &authProviderMock{}

type authProviderMock struct {
	AuthenticateFunc func(ctx context.Context, email string, known *domain.Actor) (*domain.Actor, error)

	calls struct {
		Authenticate []struct {
			Ctx   context.Context
			Email string
			Known *domain.Actor
		}
	}
	lockAuthenticate sync.RWMutex
}

func (mock *authProviderMock) Authenticate(ctx context.Context, email string, known *domain.Actor) (*domain.Actor, error) {
	if mock.AuthenticateFunc == nil {
		panic("authProviderMock.AuthenticateFunc: method is nil but authProvider.Authenticate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
		Known *domain.Actor
	}{Ctx: ctx, Email: email, Known: known}
	mock.lockAuthenticate.Lock()
	mock.calls.Authenticate = append(mock.calls.Authenticate, callInfo)
	mock.lockAuthenticate.Unlock()
	return mock.AuthenticateFunc(ctx, email, known)
}

func (mock *authProviderMock) AuthenticateCalls() []struct {
	Ctx   context.Context
	Email string
	Known *domain.Actor
} {
	mock.lockAuthenticate.RLock()
	calls := mock.calls.Authenticate
	mock.lockAuthenticate.RUnlock()
	return calls
}
