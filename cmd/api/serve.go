package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"animal-training/internal/adapters/storage/postgres"
	"animal-training/internal/platform/logger"
	"animal-training/internal/router"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API. Without a DSN the store is in-memory and
everything is lost on restart.`,
		RunE: runServe,
	}

	cmd.Flags().Int("port", 5000, "HTTP port")
	cmd.Flags().String("dsn", "", "Postgres DSN (empty => in-memory)")
	cmd.Flags().Bool("auto-migrate", true, "apply migrations on startup when a DSN is set")
	cmd.Flags().String("log-level", "info", "debug|info|warn|error")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}

	log := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		App:    cfg.Log.App,
	})
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := router.Options{Config: cfg, Logger: log}

	if cfg.Store.DSN != "" {
		if cfg.Store.AutoMigrate {
			if err := migrateUp(cfg.Store.DSN); err != nil {
				return err
			}
			log.Info("migrations applied")
		}

		pool, err := postgres.Open(ctx, cfg.Store.DSN)
		if err != nil {
			return err
		}
		defer pool.Close()
		opts.DB = pool
		log.Info("using postgres store")
	} else {
		log.Warn("DB_DSN not set, using in-memory store")
	}

	h, err := router.NewRouter(opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return oops.Code("SERVER_FAILED").Wrap(err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return oops.Code("SHUTDOWN_FAILED").Wrap(err)
	}
	return nil
}
