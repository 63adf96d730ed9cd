// Package memory holds helpers shared by the in-process store adapters.
package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

// NotFound reports a missing entity as domain.ErrNotFound.
func NotFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
}

// AlreadyExists reports an id collision as domain.ErrAlreadyExists.
func AlreadyExists(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
}

// CheckContext returns the context error, if any, tagged with the entity.
// context.DeadlineExceeded and context.Canceled pass through unmapped.
func CheckContext(ctx context.Context, entity, id string) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}
	return err
}
