package middleware

import (
	"context"
	"net/http"

	"github.com/AmanKumar245/crimewatch/internal/domain"
	"github.com/AmanKumar245/crimewatch/pkg/ctxutil"
)

type actorSource interface {
	CurrentActor(ctx context.Context) *domain.Actor
}

// Actor stores the id of the currently signed-in actor in the request
// context. Requests without a signed-in actor pass through anonymously.
func Actor(src actorSource) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := src.CurrentActor(r.Context())
			if actor == nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := ctxutil.WithActorID(r.Context(), actor.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
