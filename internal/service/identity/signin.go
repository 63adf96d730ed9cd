package identity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

// SignIn makes the actor resolved for input.Email current. A previously
// persisted actor with the exact same email is reused; otherwise the auth
// provider decides (the demo provider fabricates one).
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*domain.Actor, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("identity.SignIn: %w", err)
	}

	known, err := s.lookup(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("identity.SignIn: %w", err)
	}

	actor, err := s.auth.Authenticate(ctx, input.Email, known)
	if err != nil {
		return nil, fmt.Errorf("identity.SignIn authenticate: %w", err)
	}
	if actor == nil {
		return nil, fmt.Errorf("identity.SignIn: %w", domain.ErrUnauthorized)
	}

	if err := s.setCurrent(ctx, actor); err != nil {
		return nil, fmt.Errorf("identity.SignIn: %w", err)
	}

	s.log.InfoContext(ctx, "actor signed in",
		slog.String("actor_id", actor.ID),
		slog.Bool("reused", known != nil && known.ID == actor.ID),
	)

	return cloneActor(actor), nil
}
