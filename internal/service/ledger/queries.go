package ledger

import (
	"context"
	"fmt"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

// FindByID returns the report with id, or ErrNotFound.
func (s *Service) FindByID(ctx context.Context, id string) (*domain.Report, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ledger.FindByID: %w", err)
	}
	return report, nil
}

// ListAll returns every report in submission order.
func (s *Service) ListAll(ctx context.Context) ([]domain.Report, error) {
	return s.list(ctx, "ledger.ListAll", domain.ReportFilter{})
}

// ListByReporter returns the reports filed by reporterID in submission order.
func (s *Service) ListByReporter(ctx context.Context, reporterID string) ([]domain.Report, error) {
	return s.list(ctx, "ledger.ListByReporter", domain.ReportFilter{ReporterID: &reporterID})
}

// ListByStatus returns the reports currently in status, in submission order.
func (s *Service) ListByStatus(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}
	return s.list(ctx, "ledger.ListByStatus", domain.ReportFilter{Status: &status})
}

func (s *Service) list(ctx context.Context, op string, filter domain.ReportFilter) ([]domain.Report, error) {
	reports, err := s.reports.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reports, nil
}
