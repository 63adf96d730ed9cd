package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/AmanKumar245/crimewatch/internal/adapter/memory/report"
	"github.com/AmanKumar245/crimewatch/internal/adapter/memory/team"
	"github.com/AmanKumar245/crimewatch/internal/adapter/session"
	"github.com/AmanKumar245/crimewatch/internal/auth"
	"github.com/AmanKumar245/crimewatch/internal/config"
	"github.com/AmanKumar245/crimewatch/internal/domain"
	"github.com/AmanKumar245/crimewatch/internal/seeder"
	"github.com/AmanKumar245/crimewatch/internal/service/identity"
	"github.com/AmanKumar245/crimewatch/internal/service/ledger"
	"github.com/AmanKumar245/crimewatch/internal/transport/rest"
)

// sessionSlot is a session slot backend that can be health-checked.
type sessionSlot interface {
	Load(ctx context.Context) (*domain.Actor, error)
	Save(ctx context.Context, actor *domain.Actor) error
	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
}

// App holds the wired services and the HTTP handler.
type App struct {
	cfg *config.Config
	log *slog.Logger

	Identity *identity.Service
	Ledger   *ledger.Service
	Handler  http.Handler

	closers []func() error
}

// New wires stores, seed data, services and the router from cfg.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{cfg: cfg, log: logger}

	slot, err := a.newSessionSlot(ctx)
	if err != nil {
		return nil, err
	}

	reports := report.New()
	teams := team.New()

	if !cfg.Ledger.DisableSeed {
		if err := a.seed(ctx, teams, reports); err != nil {
			a.Close() //nolint:errcheck
			return nil, err
		}
	}

	a.Identity = identity.NewService(logger, slot, auth.NewDemoProvider(), cfg.Identity)
	if err := a.Identity.Restore(ctx); err != nil {
		a.Close() //nolint:errcheck
		return nil, fmt.Errorf("app: restore session: %w", err)
	}

	a.Ledger = ledger.NewService(logger, reports, teams, a.Identity, cfg.Ledger)

	cors := cfg.CORS
	a.Handler = rest.NewRouter(rest.RouterDeps{
		Logger:   logger,
		Identity: a.Identity,
		Ledger:   a.Ledger,
		Slot:     slot,
		Version:  BuildVersion(),
		CORS:     &cors,
	})

	return a, nil
}

func (a *App) newSessionSlot(ctx context.Context) (sessionSlot, error) {
	switch a.cfg.Session.Backend {
	case config.SessionBackendRedis:
		client := session.NewRedisClient(a.cfg.Session)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close() //nolint:errcheck
			return nil, fmt.Errorf("app: connect redis %s: %w", a.cfg.Session.RedisAddr, err)
		}
		a.closers = append(a.closers, client.Close)
		a.log.InfoContext(ctx, "session slot ready",
			slog.String("backend", config.SessionBackendRedis),
			slog.String("addr", a.cfg.Session.RedisAddr),
			slog.String("key", a.cfg.Session.Key),
		)
		return session.NewRedisSlot(client, a.cfg.Session), nil
	default:
		a.log.InfoContext(ctx, "session slot ready", slog.String("backend", config.SessionBackendMemory))
		return session.NewMemorySlot(), nil
	}
}

func (a *App) seed(ctx context.Context, teams *team.Repo, reports *report.Repo) error {
	var (
		ds  *seeder.Dataset
		err error
	)
	if a.cfg.Ledger.SeedFile != "" {
		ds, err = seeder.LoadFile(a.cfg.Ledger.SeedFile)
	} else {
		ds, err = seeder.Demo()
	}
	if err != nil {
		return fmt.Errorf("app: load seed data: %w", err)
	}

	if _, err := seeder.New(a.log, teams, reports).Run(ctx, ds); err != nil {
		return fmt.Errorf("app: seed: %w", err)
	}
	return nil
}

// Close releases external connections.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully within the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:           a.Handler,
		ReadTimeout:       a.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: a.cfg.Server.ReadTimeout,
		WriteTimeout:      a.cfg.Server.WriteTimeout,
		IdleTimeout:       a.cfg.Server.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("app: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	return nil
}

// Run is the application entry point. It loads configuration, initializes
// the logger, wires the services and serves the HTTP API until ctx is done.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return RunWithConfig(ctx, cfg)
}

// RunWithConfig is Run with an already loaded configuration.
func RunWithConfig(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("session_backend", cfg.Session.Backend),
		slog.Bool("strict_transitions", cfg.Ledger.StrictTransitions),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck

	return a.Serve(ctx)
}
