package rest

import (
	"github.com/AmanKumar245/crimewatch/internal/domain"
	"github.com/AmanKumar245/crimewatch/internal/service/ledger"
	"github.com/AmanKumar245/crimewatch/pkg/api"
)

func toActor(a *domain.Actor) *api.Actor {
	if a == nil {
		return nil
	}
	return &api.Actor{
		ID:          a.ID,
		DisplayName: a.DisplayName,
		Email:       a.Email,
		CreatedAt:   a.CreatedAt,
	}
}

func toReport(r *domain.Report) api.Report {
	images := r.Images
	if images == nil {
		images = []string{}
	}
	return api.Report{
		ID:            r.ID,
		ReporterID:    r.ReporterID,
		ReporterEmail: r.ReporterEmail,
		CrimeType:     r.CrimeType.String(),
		Description:   r.Description,
		Location:      api.Location{Lat: r.Location.Lat, Lng: r.Location.Lng},
		Address:       r.Address,
		OccurredAt:    r.OccurredAt,
		Images:        images,
		Status:        r.Status.String(),
		AssignedTeam:  r.AssignedTeam,
		ResolvedAt:    r.ResolvedAt,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toReportList(reports []domain.Report) api.ReportList {
	out := api.ReportList{Reports: make([]api.Report, 0, len(reports))}
	for i := range reports {
		out.Reports = append(out.Reports, toReport(&reports[i]))
	}
	return out
}

func toTeam(t *domain.ResponseTeam) api.Team {
	members := t.Members
	if members == nil {
		members = []string{}
	}
	return api.Team{
		ID:        t.ID,
		Name:      t.Name,
		Members:   members,
		Available: t.Available,
	}
}

func toTeamList(teams []domain.ResponseTeam) api.TeamList {
	out := api.TeamList{Teams: make([]api.Team, 0, len(teams))}
	for i := range teams {
		out.Teams = append(out.Teams, toTeam(&teams[i]))
	}
	return out
}

func toStats(s ledger.Stats) api.Stats {
	out := api.Stats{
		Total:       s.Total,
		Pending:     s.Pending,
		InProgress:  s.InProgress,
		Resolved:    s.Resolved,
		Emergencies: s.Emergencies,
		ByCrimeType: make(map[string]int, len(s.ByCrimeType)),
	}
	for ct, n := range s.ByCrimeType {
		out.ByCrimeType[ct.String()] = n
	}
	return out
}

func fromSubmitRequest(req api.SubmitReportRequest) (ledger.SubmitInput, error) {
	loc, err := fromLocation(req.Location)
	if err != nil {
		return ledger.SubmitInput{}, err
	}
	return ledger.SubmitInput{
		ReporterID:    req.ReporterID,
		ReporterEmail: req.ReporterEmail,
		CrimeType:     domain.CrimeType(req.CrimeType),
		Description:   req.Description,
		Location:      loc,
		Address:       req.Address,
		OccurredAt:    req.OccurredAt,
		Images:        req.Images,
	}, nil
}

// fromLocation converts a request location; it is required.
func fromLocation(loc *api.Location) (domain.Coordinates, error) {
	if loc == nil {
		return domain.Coordinates{}, domain.NewValidationError("location", "required")
	}
	return domain.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}
