package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/AmanKumar245/crimewatch/internal/domain"
	"github.com/AmanKumar245/crimewatch/internal/service/ledger"
	"github.com/AmanKumar245/crimewatch/pkg/api"
	"github.com/go-chi/chi/v5"
)

// teamService defines the roster and dashboard operations needed by TeamHandler.
type teamService interface {
	ListTeams(ctx context.Context) ([]domain.ResponseTeam, error)
	ListAvailableTeams(ctx context.Context) ([]domain.ResponseTeam, error)
	SetTeamAvailability(ctx context.Context, teamID string, available bool) (*domain.ResponseTeam, error)
	Stats(ctx context.Context) (ledger.Stats, error)
}

// TeamHandler serves the response-team roster and the dashboard counters.
type TeamHandler struct {
	svc teamService
	log *slog.Logger
}

// NewTeamHandler creates a TeamHandler.
func NewTeamHandler(svc teamService, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{svc: svc, log: logger.With("handler", "teams")}
}

// List handles GET /api/v1/teams[?available=true].
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	availableOnly := false
	if raw := r.URL.Query().Get("available"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("available", "must be a boolean"))
			return
		}
		availableOnly = v
	}

	var (
		teams []domain.ResponseTeam
		err   error
	)
	if availableOnly {
		teams, err = h.svc.ListAvailableTeams(r.Context())
	} else {
		teams, err = h.svc.ListTeams(r.Context())
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTeamList(teams))
}

// SetAvailability handles PUT /api/v1/teams/{id}/availability.
func (h *TeamHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	var req api.SetAvailabilityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Available == nil {
		handleError(h.log, w, r, domain.NewValidationError("available", "required"))
		return
	}

	team, err := h.svc.SetTeamAvailability(r.Context(), chi.URLParam(r, "id"), *req.Available)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTeam(team))
}

// Stats handles GET /api/v1/dashboard/stats.
func (h *TeamHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStats(st))
}
