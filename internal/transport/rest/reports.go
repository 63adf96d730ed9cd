package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/AmanKumar245/crimewatch/internal/domain"
	"github.com/AmanKumar245/crimewatch/internal/service/ledger"
	"github.com/AmanKumar245/crimewatch/pkg/api"
	"github.com/go-chi/chi/v5"
)

// reportService defines the ledger operations needed by ReportHandler.
type reportService interface {
	Submit(ctx context.Context, input ledger.SubmitInput) (*domain.Report, error)
	ReportEmergency(ctx context.Context, input ledger.EmergencyInput) (*domain.Report, error)
	UpdateStatus(ctx context.Context, input ledger.UpdateStatusInput) (*domain.Report, error)
	FindByID(ctx context.Context, id string) (*domain.Report, error)
	ListAll(ctx context.Context) ([]domain.Report, error)
	ListByReporter(ctx context.Context, reporterID string) ([]domain.Report, error)
	ListByStatus(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error)
}

// ReportHandler serves the Report Ledger endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "reports")}
}

// Submit handles POST /api/v1/reports.
func (h *ReportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req api.SubmitReportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	in, err := fromSubmitRequest(req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	report, err := h.svc.Submit(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/reports/"+report.ID)
	writeJSON(w, http.StatusCreated, toReport(report))
}

// Emergency handles POST /api/v1/reports/emergency.
func (h *ReportHandler) Emergency(w http.ResponseWriter, r *http.Request) {
	var req api.EmergencyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	loc, err := fromLocation(req.Location)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	report, err := h.svc.ReportEmergency(r.Context(), ledger.EmergencyInput{Location: loc})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/reports/"+report.ID)
	writeJSON(w, http.StatusCreated, toReport(report))
}

// List handles GET /api/v1/reports. The reporter and status query
// parameters are mutually exclusive filters.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	reporter, status := q.Get("reporter"), q.Get("status")

	var (
		reports []domain.Report
		err     error
	)
	switch {
	case reporter != "" && status != "":
		handleError(h.log, w, r, domain.NewValidationError("query", "reporter and status cannot be combined"))
		return
	case reporter != "":
		reports, err = h.svc.ListByReporter(r.Context(), reporter)
	case status != "":
		reports, err = h.svc.ListByStatus(r.Context(), domain.ReportStatus(status))
	default:
		reports, err = h.svc.ListAll(r.Context())
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportList(reports))
}

// Get handles GET /api/v1/reports/{id}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReport(report))
}

// UpdateStatus handles POST /api/v1/reports/{id}/status.
func (h *ReportHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.svc.UpdateStatus(r.Context(), ledger.UpdateStatusInput{
		ReportID: chi.URLParam(r, "id"),
		Status:   domain.ReportStatus(req.Status),
		TeamID:   req.TeamID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReport(report))
}
