package identity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

// Register creates a fresh actor and makes it the current one, replacing
// whoever was signed in before.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Actor, error) {
	input.DisplayName = domain.NormalizeText(input.DisplayName)
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("identity.Register: %w", err)
	}

	actor := &domain.Actor{
		ID:          domain.NewActorID(),
		DisplayName: input.DisplayName,
		Email:       input.Email,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.setCurrent(ctx, actor); err != nil {
		return nil, fmt.Errorf("identity.Register: %w", err)
	}

	s.log.InfoContext(ctx, "actor registered", slog.String("actor_id", actor.ID))

	return cloneActor(actor), nil
}
