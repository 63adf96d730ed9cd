package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

// Submit validates input and appends a new pending report to the ledger.
// The report becomes visible to readers only once Submit returns it.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Report, error) {
	input = normalizeSubmit(input)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ReporterID == "" {
		input.ReporterID = domain.AnonymousActorID
		if actor := s.currentActor(ctx); actor != nil {
			input.ReporterID = actor.ID
		}
	}
	if input.Address == "" {
		input.Address = input.Location.String()
	}

	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("ledger.Submit: %w", err)
	}

	now := s.now().UTC()
	images := slices.Clone(input.Images)
	if images == nil {
		images = []string{}
	}

	report := &domain.Report{
		ID:            domain.NewReportID(),
		ReporterID:    input.ReporterID,
		ReporterEmail: input.ReporterEmail,
		CrimeType:     input.CrimeType,
		Description:   input.Description,
		Location:      input.Location,
		Address:       input.Address,
		OccurredAt:    input.OccurredAt,
		Images:        images,
		Status:        domain.ReportStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.reports.Create(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("ledger.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "report submitted",
		slog.String("report_id", created.ID),
		slog.String("reporter_id", created.ReporterID),
		slog.String("crime_type", created.CrimeType.String()),
	)

	return created, nil
}

func normalizeSubmit(in SubmitInput) SubmitInput {
	in.ReporterID = strings.TrimSpace(in.ReporterID)
	in.ReporterEmail = domain.NormalizeEmail(in.ReporterEmail)
	in.CrimeType = domain.CrimeType(strings.ToLower(strings.TrimSpace(string(in.CrimeType))))
	in.Address = domain.NormalizeText(in.Address)

	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		if desc == "" {
			in.Description = nil
		} else {
			in.Description = &desc
		}
	}

	if in.Images != nil {
		images := make([]string, len(in.Images))
		for i, img := range in.Images {
			images[i] = strings.TrimSpace(img)
		}
		in.Images = images
	}
	return in
}
