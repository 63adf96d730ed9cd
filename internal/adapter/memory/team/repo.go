// Package team implements the response-team roster in process memory.
package team

import (
	"context"
	"sync"

	"github.com/AmanKumar245/crimewatch/internal/adapter/memory"
	"github.com/AmanKumar245/crimewatch/internal/domain"
)

const entity = "team"

// Repo is an ordered roster of response teams. Only availability can
// change once a team is loaded.
type Repo struct {
	mu    sync.RWMutex
	teams map[string]*domain.ResponseTeam
	order []string
}

// New creates an empty roster.
func New() *Repo {
	return &Repo{teams: make(map[string]*domain.ResponseTeam)}
}

// Load appends teams to the roster in the given order. Returns
// ErrAlreadyExists on the first duplicate id; teams before it stay loaded.
func (r *Repo) Load(ctx context.Context, teams []domain.ResponseTeam) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range teams {
		t := &teams[i]
		if _, ok := r.teams[t.ID]; ok {
			return memory.AlreadyExists(entity, t.ID)
		}
		r.teams[t.ID] = t.Clone()
		r.order = append(r.order, t.ID)
	}
	return nil
}

// GetByID returns the team with the given id.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.ResponseTeam, error) {
	if err := memory.CheckContext(ctx, entity, id); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.teams[id]
	if !ok {
		return nil, memory.NotFound(entity, id)
	}
	return t.Clone(), nil
}

// List returns the roster in load order. With availableOnly set, teams
// marked unavailable are skipped.
func (r *Repo) List(ctx context.Context, availableOnly bool) ([]domain.ResponseTeam, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ResponseTeam, 0, len(r.order))
	for _, id := range r.order {
		t := r.teams[id]
		if availableOnly && !t.Available {
			continue
		}
		out = append(out, *t.Clone())
	}
	return out, nil
}

// SetAvailability toggles whether the team can be dispatched.
func (r *Repo) SetAvailability(ctx context.Context, id string, available bool) (*domain.ResponseTeam, error) {
	if err := memory.CheckContext(ctx, entity, id); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.teams[id]
	if !ok {
		return nil, memory.NotFound(entity, id)
	}
	t.Available = available
	return t.Clone(), nil
}
