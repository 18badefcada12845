package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shelter-dogs/internal/app"
	"shelter-dogs/internal/i18n"
	"shelter-dogs/internal/platform/config"
	"shelter-dogs/internal/platform/logger"
	"shelter-dogs/internal/platform/metrics"
	"shelter-dogs/internal/router"
)

// @title Shelter Dogs API
// @version 1.0
// @description Catálogo público de perros en adopción y panel de administración del refugio.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}
	log := app.NewLogger(cfg.Log)
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	// catálogos rotos => no arrancar
	catalogs, err := i18n.Load()
	if err != nil {
		return fmt.Errorf("i18n: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := app.OpenDB(cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	store, err := app.NewBlobStore(ctx, cfg.Blob)
	if err != nil {
		return fmt.Errorf("blob store: %w", err)
	}

	verifier, err := app.NewAuthVerifier(cfg.Auth)
	if err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if verifier == nil {
		log.Warn("AUTH_BASE_URL not set, accepting X-Debug-User-ID", nil)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Blob:         store,
		Catalogs:     catalogs,
		Log:          log,
		Metrics:      metrics.New(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // subidas de fotos
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "blob": cfg.Blob.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
