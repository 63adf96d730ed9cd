package identity

import (
	"context"
	"fmt"
	"log/slog"
)

// SignOut clears the current actor and the session slot. Signing out while
// already signed out is a no-op.
func (s *Service) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.slot.Clear(ctx); err != nil {
		return fmt.Errorf("identity.SignOut: %w", err)
	}

	if s.current == nil {
		return nil
	}

	actorID := s.current.ID
	s.current = nil

	s.log.InfoContext(ctx, "actor signed out", slog.String("actor_id", actorID))
	return nil
}
