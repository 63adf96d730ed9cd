package ctxutil

import (
	"context"
	"time"
)

type ctxKey string

const (
	actorIDKey   ctxKey = "actor_id"
	requestIDKey ctxKey = "request_id"
)

// WithActorID stores the signed-in actor's ID in the context.
func WithActorID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, actorIDKey, id)
}

// ActorIDFromCtx extracts the actor ID from the context.
// Returns "" and false if the value is missing, empty, or wrong type.
func ActorIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(actorIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Sleep blocks for d or until ctx is done, whichever comes first.
// A non-positive d returns immediately with ctx.Err().
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
