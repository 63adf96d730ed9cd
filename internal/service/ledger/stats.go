package ledger

import (
	"context"
	"fmt"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

// Stats are the dashboard counters over the whole ledger.
type Stats struct {
	Total       int
	Pending     int
	InProgress  int
	Resolved    int
	Emergencies int
	ByCrimeType map[domain.CrimeType]int
}

// Stats counts reports by status and crime type.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	reports, err := s.reports.List(ctx, domain.ReportFilter{})
	if err != nil {
		return Stats{}, fmt.Errorf("ledger.Stats: %w", err)
	}

	st := Stats{Total: len(reports), ByCrimeType: make(map[domain.CrimeType]int)}
	for _, r := range reports {
		switch r.Status {
		case domain.ReportStatusPending:
			st.Pending++
		case domain.ReportStatusInProgress:
			st.InProgress++
		case domain.ReportStatusResolved:
			st.Resolved++
		}
		if r.CrimeType == domain.CrimeTypeEmergency {
			st.Emergencies++
		}
		st.ByCrimeType[r.CrimeType]++
	}
	return st, nil
}
