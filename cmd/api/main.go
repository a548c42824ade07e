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

	"gl-reconciliation/internal/api"
	"gl-reconciliation/internal/config"
	"gl-reconciliation/internal/domain"
	"gl-reconciliation/internal/fixture"
	"gl-reconciliation/internal/gateway"
	"gl-reconciliation/internal/logger"
	"gl-reconciliation/internal/usecase"
)

func main() {
	// Load configuration
	cfg := loadConfig()
	log := logger.New(cfg.Logging)

	log.Info().Msg("Starting GL reconciliation API...")

	// Initialize storage
	store, err := gateway.NewSQLiteStore(cfg.Storage.DatabasePath, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Storage.DatabasePath).Msg("failed to open database")
	}
	defer store.Close()

	// Initialize reconciliation usecase
	uc := usecase.NewReconciliationUseCase(store, store, store,
		usecase.WithEntryStore(store),
		usecase.WithSimulator(fixture.NewSynthesizer(cfg.Fixture)),
		usecase.WithDefaultOptions(cfg.Reconciliation.MatcherOptions()),
		usecase.WithReportMode(domain.ReportMode(cfg.Reconciliation.ReportMode)),
		usecase.WithLogger(log),
	)

	// Create API server
	server := api.NewServer(cfg, uc, log)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("API listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Stopped")
}

func loadConfig() *config.Config {
	configPath := os.Getenv("RECON_CONFIG")
	if configPath == "" {
		return config.LoadOrEnv()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config from %s: %v, using environment\n", configPath, err)
		return config.LoadFromEnv()
	}
	return cfg
}
