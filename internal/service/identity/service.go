package identity

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/AmanKumar245/crimewatch/internal/config"
	"github.com/AmanKumar245/crimewatch/internal/domain"
	"github.com/AmanKumar245/crimewatch/pkg/ctxutil"
)

// sessionSlot is the one-record durable store holding the current actor
// between process restarts. Load returns (nil, nil) when the slot is empty.
type sessionSlot interface {
	Load(ctx context.Context) (*domain.Actor, error)
	Save(ctx context.Context, actor *domain.Actor) error
	Clear(ctx context.Context) error
}

// authProvider decides which actor becomes current for a sign-in email.
// known is the previously persisted actor with exactly that email, or nil.
type authProvider interface {
	Authenticate(ctx context.Context, email string, known *domain.Actor) (*domain.Actor, error)
}

// Service is the Identity Register: it tracks at most one signed-in actor.
type Service struct {
	log     *slog.Logger
	slot    sessionSlot
	auth    authProvider
	latency time.Duration
	now     func() time.Time

	mu      sync.RWMutex
	current *domain.Actor
	// known indexes every actor seen by this process by exact email.
	known map[string]*domain.Actor
}

// NewService creates a new identity service instance.
func NewService(
	logger *slog.Logger,
	slot sessionSlot,
	auth authProvider,
	cfg config.IdentityConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "identity"),
		slot:    slot,
		auth:    auth,
		latency: cfg.Latency,
		now:     time.Now,
		known:   make(map[string]*domain.Actor),
	}
}

// CurrentActor returns a copy of the signed-in actor, or nil.
func (s *Service) CurrentActor(_ context.Context) *domain.Actor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneActor(s.current)
}

// Restore rehydrates the current actor from the session slot. An empty
// slot leaves the register signed out.
func (s *Service) Restore(ctx context.Context) error {
	actor, err := s.slot.Load(ctx)
	if err != nil {
		return fmt.Errorf("identity.Restore: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = cloneActor(actor)
	if actor != nil {
		s.known[actor.Email] = cloneActor(actor)
		s.log.InfoContext(ctx, "session restored", slog.String("actor_id", actor.ID))
	}
	return nil
}

// setCurrent persists actor to the slot and makes it current. The write
// lock is held across the slot write so the slot and the in-process state
// never disagree.
func (s *Service) setCurrent(ctx context.Context, actor *domain.Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.slot.Save(ctx, actor); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.current = cloneActor(actor)
	s.known[actor.Email] = cloneActor(actor)
	return nil
}

// lookup finds a previously persisted actor with exactly this email:
// the slot record first, then the in-process directory.
func (s *Service) lookup(ctx context.Context, email string) (*domain.Actor, error) {
	stored, err := s.slot.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if stored != nil && stored.Email == email {
		return stored, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneActor(s.known[email]), nil
}

// wait applies the configured artificial latency before a mutation.
func (s *Service) wait(ctx context.Context) error {
	return ctxutil.Sleep(ctx, s.latency)
}

func cloneActor(a *domain.Actor) *domain.Actor {
	if a == nil {
		return nil
	}
	out := *a
	return &out
}
