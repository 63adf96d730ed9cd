package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/AmanKumar245/crimewatch/internal/domain"
	"github.com/AmanKumar245/crimewatch/internal/service/identity"
	"github.com/AmanKumar245/crimewatch/pkg/api"
)

// identityService defines the minimal interface needed by SessionHandler.
type identityService interface {
	Register(ctx context.Context, input identity.RegisterInput) (*domain.Actor, error)
	SignIn(ctx context.Context, input identity.SignInInput) (*domain.Actor, error)
	SignOut(ctx context.Context) error
	CurrentActor(ctx context.Context) *domain.Actor
}

// SessionHandler serves the Identity Register endpoints.
type SessionHandler struct {
	svc identityService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc identityService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "session")}
}

// Current handles GET /api/v1/session.
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.Session{Actor: toActor(h.svc.CurrentActor(r.Context()))})
}

// Register handles POST /api/v1/session/register.
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	actor, err := h.svc.Register(r.Context(), identity.RegisterInput{
		DisplayName: req.DisplayName,
		Email:       req.Email,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.Session{Actor: toActor(actor)})
}

// SignIn handles POST /api/v1/session/sign-in.
func (h *SessionHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req api.SignInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	actor, err := h.svc.SignIn(r.Context(), identity.SignInInput{Email: req.Email})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, api.Session{Actor: toActor(actor)})
}

// SignOut handles POST /api/v1/session/sign-out.
func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SignOut(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.Session{})
}
