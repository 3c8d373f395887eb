// Command mockbackend runs the in-memory healthcare backend locally.
// It serves the same endpoints as the hosted service, so the portal CLI
// can be pointed at it with PORTAL_BACKEND_URL.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kuhealthcare/portal/internal/config"
	"github.com/kuhealthcare/portal/internal/mockapi"
	"github.com/kuhealthcare/portal/pkg/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting mock healthcare backend",
		"port", cfg.MockPort,
		"seed_data", cfg.MockSeedData,
	)

	store := mockapi.NewStore()
	if cfg.MockSeedData {
		store.Seed()
	}

	handler := mockapi.NewRouter(mockapi.RouterConfig{
		Logger:   logger,
		Store:    store,
		Registry: prometheus.NewRegistry(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.MockPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
