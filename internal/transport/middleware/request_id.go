package middleware

import (
	"net/http"
	"strings"

	"github.com/AmanKumar245/crimewatch/pkg/ctxutil"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request correlation id in both directions.
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLen bounds client-supplied ids before they reach the logs.
const maxRequestIDLen = 128

// RequestID reuses a client-supplied X-Request-Id or generates a UUID,
// stores it in the context and echoes it back on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
