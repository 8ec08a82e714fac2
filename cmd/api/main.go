package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"example.com/activities/internal/api"
	"example.com/activities/internal/config"
	"example.com/activities/internal/domain"
	"example.com/activities/internal/events"
	"example.com/activities/internal/logging"
	"example.com/activities/internal/observability"
	"example.com/activities/internal/registry"
	httptransport "example.com/activities/internal/transport/http"
	"example.com/activities/web"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	var opts []registry.Option
	if cfg.EnforceCapacity {
		opts = append(opts, registry.WithCapacityEnforcement())
	}
	store := registry.NewMemory(opts...)

	var sink domain.EventSink = events.Nop{}
	if cfg.RosterEventsEnabled {
		publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.RosterEventsTopic, logger)
		defer publisher.Close()
		sink = publisher
	}

	service := domain.NewService(store, sink)

	// Prime roster gauges with the seeded state so dashboards start correct.
	if snapshot, err := store.Snapshot(context.Background()); err == nil {
		for name, activity := range snapshot {
			observability.SetRosterSize(name, len(activity.Participants))
		}
	}

	staticAssets, err := web.Static()
	if err != nil {
		logger.Fatal("failed to load static assets", zap.Error(err))
	}

	handler := api.NewHandler(service)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())
	api.RegisterStatic(mux, staticAssets)

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, logging.RequestLogger(logger)(mux))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("activities service listening", zap.String("address", cfg.HTTPAddress))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-shutdownCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
}
