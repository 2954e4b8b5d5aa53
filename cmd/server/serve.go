package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ukkm-backend/internal/app"
	"ukkm-backend/internal/archive"
	"ukkm-backend/internal/auth"
	"ukkm-backend/internal/cache"
	"ukkm-backend/internal/health"
	"ukkm-backend/internal/realtime"
	"ukkm-backend/internal/scheduler"
	"ukkm-backend/pkg/logger"
)

func serveCommand(opts *options) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				opts.cfg.Server.Port = port
			}
			return serve(cmd.Context(), opts)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (overrides server.port)")
	return cmd
}

func serve(parent context.Context, opts *options) error {
	cfg, log := opts.cfg, opts.log
	if cfg.JWT.Secret == "" {
		return errors.New("jwt secret is not configured (set JWT_SECRET)")
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Sessions live in Redis when reachable, in process otherwise
	sessionStore := cache.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger.Named(log, "cache"))
	sessions := auth.NewSessionService(
		auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpirationHours),
		auth.NewIdentityVerifier(cfg.Identity.Secret, cfg.Identity.Issuer, cfg.Identity.Unit),
		auth.NewOfficerDirectory(cfg.Officers),
		sessionStore,
		logger.Named(log, "auth"),
	)

	hub := realtime.NewHub(logger.Named(log, "realtime"))
	go hub.Run(ctx)

	reports, err := archive.New(ctx, cfg, logger.Named(log, "archive"))
	if err != nil {
		return err
	}

	svc := app.Seeded(hub, reports, log)

	if cfg.Scheduler.Enabled && reports.Enabled() {
		sched := scheduler.NewScheduler(cfg.Scheduler.Cron, svc.Reports, logger.Named(log, "scheduler"))
		if err := sched.Start(); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		defer sched.Stop()
	} else if cfg.Scheduler.Enabled {
		log.Warn("scheduler enabled but no archive bucket configured, skipping")
	}

	handler := svc.Handler(app.HTTPDeps{
		Config:     cfg,
		Sessions:   sessions,
		Health:     health.NewHealthChecker(sessionStore, svc.Store, time.Now()),
		ChangeFeed: hub.ServeWS,
		Logger:     log,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", srv.Addr), zap.String("sessions", sessionStore.Backend()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
