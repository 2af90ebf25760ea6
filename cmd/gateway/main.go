package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/config"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway/ebanx"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway/mundipagg"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/infrastructure/transport"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/interfaces/rest"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"port", cfg.Server.Port,
		"env", cfg.Primary.Env,
		"log_level", cfg.Logger.Level,
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewRecorder(registry)

	httpTransport := transport.NewHTTPTransport(cfg.Transport, logger)

	checkout, err := ebanx.New(ebanx.Config{
		IntegrationKey: cfg.Ebanx.IntegrationKey,
		Test:           cfg.Ebanx.Test,
		TestURL:        cfg.Ebanx.TestURL,
		LiveURL:        cfg.Ebanx.LiveURL,
	}, httpTransport, logger, recorder)
	if err != nil {
		logger.Error("failed to configure ebanx gateway", "error", err)
		os.Exit(1)
	}

	charges, err := mundipagg.New(mundipagg.Config{
		APIKey:  cfg.Mundipagg.APIKey,
		Test:    cfg.Mundipagg.Test,
		TestURL: cfg.Mundipagg.TestURL,
		LiveURL: cfg.Mundipagg.LiveURL,
	}, httpTransport, logger, recorder)
	if err != nil {
		logger.Error("failed to configure mundipagg gateway", "error", err)
		os.Exit(1)
	}

	h := rest.NewHandler(checkout, charges, logger)

	router := chi.NewRouter()
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	h.RegisterRoutes(router)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
