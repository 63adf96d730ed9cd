// Package session implements the one-record slot that persists the
// current actor between process restarts.
package session

import (
	"context"
	"sync"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

// MemorySlot keeps the record in process memory. It survives sign-out and
// sign-in within one process but not a restart.
type MemorySlot struct {
	mu    sync.Mutex
	actor *domain.Actor
}

// NewMemorySlot creates an empty slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// Load returns the stored actor, or nil when the slot is empty.
func (s *MemorySlot) Load(ctx context.Context) (*domain.Actor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return copyActor(s.actor), nil
}

// Save replaces the stored actor.
func (s *MemorySlot) Save(ctx context.Context, actor *domain.Actor) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.actor = copyActor(actor)
	return nil
}

// Clear empties the slot.
func (s *MemorySlot) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.actor = nil
	return nil
}

// Ping always succeeds.
func (s *MemorySlot) Ping(_ context.Context) error {
	return nil
}

func copyActor(a *domain.Actor) *domain.Actor {
	if a == nil {
		return nil
	}
	out := *a
	return &out
}
