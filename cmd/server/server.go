package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/dmgrid/encounter-api/internal/config"
	v1alpha1 "github.com/dmgrid/encounter-api/internal/handlers/api/v1alpha1"
	"github.com/dmgrid/encounter-api/internal/orchestrators/encounter"
	"github.com/dmgrid/encounter-api/internal/pkg/clock"
	"github.com/dmgrid/encounter-api/internal/pkg/idgen"
	"github.com/dmgrid/encounter-api/internal/redis"
	"github.com/dmgrid/encounter-api/internal/repositories/encounters"
	"github.com/dmgrid/encounter-api/internal/sync"
)

var httpAddr string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the encounter API server with the websocket player-view mirror.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&httpAddr, "addr", "", "listen address (overrides HTTP_ADDR)")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if httpAddr != "" {
		cfg.HTTPAddr = httpAddr
	}

	redisClient, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		PoolSize: cfg.RedisPoolSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}()

	repo, err := encounters.NewRedisRepository(&encounters.Config{
		Client: redisClient,
		Clock:  clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create encounter repository: %w", err)
	}

	hub := sync.NewHub()
	defer hub.Close()

	svc, err := encounter.NewOrchestrator(&encounter.Config{
		IDGenerator: idgen.NewUUID(""),
		Repository:  repo,
		Broadcaster: hub,
	})
	if err != nil {
		return fmt.Errorf("failed to create encounter orchestrator: %w", err)
	}

	// Resume where the table left off; a fresh deployment has nothing
	// stored and that is fine.
	if out, err := svc.RestoreLive(ctx, &encounter.RestoreLiveInput{}); err != nil {
		slog.Warn("Failed to restore live encounter", "error", err)
	} else if out.Restored {
		slog.Info("Resumed live encounter from store")
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		EncounterService: svc,
	})
	if err != nil {
		return fmt.Errorf("failed to create encounter handler: %w", err)
	}

	router := mux.NewRouter()
	handler.RegisterRoutes(router.PathPrefix("/api/v1alpha1").Subrouter())
	router.HandleFunc("/ws", hub.Handle)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			return srv.Close()
		}
		slog.Info("Server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
