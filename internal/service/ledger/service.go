package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/AmanKumar245/crimewatch/internal/config"
	"github.com/AmanKumar245/crimewatch/internal/domain"
	"github.com/AmanKumar245/crimewatch/pkg/ctxutil"
)

// reportRepo defines the report storage needed by the ledger.
type reportRepo interface {
	Create(ctx context.Context, report *domain.Report) (*domain.Report, error)
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error)
	Update(ctx context.Context, id string, fn func(*domain.Report) error) (*domain.Report, error)
}

// teamRepo defines the roster storage needed by the ledger.
type teamRepo interface {
	GetByID(ctx context.Context, id string) (*domain.ResponseTeam, error)
	List(ctx context.Context, availableOnly bool) ([]domain.ResponseTeam, error)
	SetAvailability(ctx context.Context, id string, available bool) (*domain.ResponseTeam, error)
}

// actorSource exposes the signed-in actor, if any.
type actorSource interface {
	CurrentActor(ctx context.Context) *domain.Actor
}

// Service is the Report Ledger: it owns incident reports and the
// response-team roster.
type Service struct {
	log     *slog.Logger
	reports reportRepo
	teams   teamRepo
	actors  actorSource
	latency time.Duration
	strict  bool
	now     func() time.Time
}

// NewService creates a new ledger service instance. actors may be nil, in
// which case every submission without a reporter id is anonymous.
func NewService(
	logger *slog.Logger,
	reports reportRepo,
	teams teamRepo,
	actors actorSource,
	cfg config.LedgerConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "ledger"),
		reports: reports,
		teams:   teams,
		actors:  actors,
		latency: cfg.SubmitLatency,
		strict:  cfg.StrictTransitions,
		now:     time.Now,
	}
}

func (s *Service) currentActor(ctx context.Context) *domain.Actor {
	if s.actors == nil {
		return nil
	}
	return s.actors.CurrentActor(ctx)
}

// wait applies the configured artificial submit latency.
func (s *Service) wait(ctx context.Context) error {
	return ctxutil.Sleep(ctx, s.latency)
}
