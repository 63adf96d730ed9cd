package ledger

import (
	"fmt"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

// forwardTransitions is the table enforced when strict transitions are
// enabled. Staying in the same state is always allowed.
var forwardTransitions = map[domain.ReportStatus][]domain.ReportStatus{
	domain.ReportStatusPending:    {domain.ReportStatusInProgress},
	domain.ReportStatusInProgress: {domain.ReportStatusResolved, domain.ReportStatusPending},
	domain.ReportStatusResolved:   {domain.ReportStatusPending},
}

// checkTransition validates moving report to next under the strict table.
// Starting an investigation requires a team, either supplied with the
// command or already assigned.
func checkTransition(report *domain.Report, next domain.ReportStatus, teamID *string) error {
	from := report.Status
	if from == next {
		return nil
	}

	allowed := false
	for _, to := range forwardTransitions[from] {
		if to == next {
			allowed = true
			break
		}
	}
	if !allowed {
		return domain.NewValidationError("status",
			fmt.Sprintf("transition from %s to %s is not allowed", from, next))
	}

	if next == domain.ReportStatusInProgress && teamID == nil && report.AssignedTeam == nil {
		return domain.NewValidationError("team_id", "required to start an investigation")
	}
	return nil
}
