package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/AmanKumar245/crimewatch/internal/domain"
	"github.com/AmanKumar245/crimewatch/pkg/api"
	"github.com/AmanKumar245/crimewatch/pkg/ctxutil"
)

// maxBodyBytes caps request bodies. Image references are URLs, not
// uploads, so a megabyte is generous.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, api.Error{
		Error:     message,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}

// decodeJSON reads a single JSON object from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if dec.More() {
		return errors.New("decode body: trailing data")
	}
	return nil
}

// handleError maps a service error onto an HTTP status. Unexpected errors
// are logged and hidden behind a generic 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := api.Error{
			Error:     "validation failed",
			Fields:    make([]api.FieldError, 0, len(verr.Errors)),
			RequestID: ctxutil.RequestIDFromCtx(r.Context()),
		}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, api.FieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, r, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, r, http.StatusConflict, "already exists")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
		)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
