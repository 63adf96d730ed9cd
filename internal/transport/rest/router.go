package rest

import (
	"log/slog"
	"net/http"

	"github.com/AmanKumar245/crimewatch/internal/config"
	"github.com/AmanKumar245/crimewatch/internal/transport/middleware"
	"github.com/go-chi/chi/v5"
)

// RouterDeps bundles what NewRouter needs to mount the API.
type RouterDeps struct {
	Logger   *slog.Logger
	Identity identityService
	Ledger   ledgerService
	Slot     slotPinger
	Version  string
	CORS     *config.CORSConfig
}

// ledgerService is the union of the ledger operations served over HTTP.
type ledgerService interface {
	reportService
	teamService
}

// NewRouter builds the HTTP handler of the API. CORS is mounted only when
// deps.CORS is set.
func NewRouter(deps RouterDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	health := NewHealthHandler(deps.Slot, deps.Version)
	session := NewSessionHandler(deps.Identity, logger)
	reports := NewReportHandler(deps.Ledger, logger)
	teams := NewTeamHandler(deps.Ledger, logger)

	var cors middleware.Middleware
	if deps.CORS != nil {
		cors = middleware.CORS(*deps.CORS)
	}

	r := chi.NewRouter()
	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Actor(deps.Identity),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		cors,
	))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", health.Health)
	r.Get("/health/live", health.Live)
	r.Get("/health/ready", health.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/session", func(r chi.Router) {
			r.Get("/", session.Current)
			r.Post("/register", session.Register)
			r.Post("/sign-in", session.SignIn)
			r.Post("/sign-out", session.SignOut)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", reports.List)
			r.Post("/", reports.Submit)
			r.Post("/emergency", reports.Emergency)
			r.Get("/{id}", reports.Get)
			r.Post("/{id}/status", reports.UpdateStatus)
		})

		r.Get("/teams", teams.List)
		r.Put("/teams/{id}/availability", teams.SetAvailability)
		r.Get("/dashboard/stats", teams.Stats)
	})

	return r
}
