package auth

import (
	"context"
	"time"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

// DemoProvider is the stand-in identity backend used while no real
// credential check exists. Any well-formed address is accepted: a known
// actor is returned as is, an unknown address gets a freshly fabricated
// actor named domain.DemoDisplayName.
type DemoProvider struct {
	now func() time.Time
}

// NewDemoProvider creates a DemoProvider using the wall clock.
func NewDemoProvider() *DemoProvider {
	return &DemoProvider{now: time.Now}
}

// Authenticate resolves email to the actor that should become current.
func (p *DemoProvider) Authenticate(ctx context.Context, email string, known *domain.Actor) (*domain.Actor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if known != nil && known.Email == email {
		actor := *known
		return &actor, nil
	}

	return &domain.Actor{
		ID:          domain.NewActorID(),
		DisplayName: domain.DemoDisplayName,
		Email:       email,
		CreatedAt:   p.now().UTC(),
	}, nil
}
