// Package report implements the report ledger storage in process memory.
package report

import (
	"context"
	"sync"

	"github.com/AmanKumar245/crimewatch/internal/adapter/memory"
	"github.com/AmanKumar245/crimewatch/internal/domain"
)

const entity = "report"

// Repo is an insertion-ordered report store. Every value crossing its
// boundary is a deep copy, so callers can never alias stored state.
type Repo struct {
	mu      sync.RWMutex
	records map[string]*domain.Report
	order   []string
}

// New creates an empty report repository.
func New() *Repo {
	return &Repo{records: make(map[string]*domain.Report)}
}

// Create appends report to the ledger. Returns ErrAlreadyExists if the id
// is already taken.
func (r *Repo) Create(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	if err := memory.CheckContext(ctx, entity, report.ID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[report.ID]; ok {
		return nil, memory.AlreadyExists(entity, report.ID)
	}

	r.records[report.ID] = report.Clone()
	r.order = append(r.order, report.ID)
	return report.Clone(), nil
}

// GetByID returns the report with the given id.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	if err := memory.CheckContext(ctx, entity, id); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.records[id]
	if !ok {
		return nil, memory.NotFound(entity, id)
	}
	return row.Clone(), nil
}

// List returns the reports matching filter in insertion order.
func (r *Repo) List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Report, 0, len(r.order))
	for _, id := range r.order {
		row := r.records[id]
		if !filter.Match(row) {
			continue
		}
		out = append(out, *row.Clone())
	}
	return out, nil
}

// Update applies fn to a copy of the stored report under the write lock
// and commits the copy only if fn succeeds. The read-modify-write is
// atomic with respect to every other call on the repository.
func (r *Repo) Update(ctx context.Context, id string, fn func(*domain.Report) error) (*domain.Report, error) {
	if err := memory.CheckContext(ctx, entity, id); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.records[id]
	if !ok {
		return nil, memory.NotFound(entity, id)
	}

	next := row.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.ID = row.ID
	next.CreatedAt = row.CreatedAt

	r.records[id] = next
	return next.Clone(), nil
}

// Count returns the number of stored reports.
func (r *Repo) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
