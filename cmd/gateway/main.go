package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/avi-gateway/internal/api"
	"github.com/DanielPopoola/avi-gateway/internal/application"
	"github.com/DanielPopoola/avi-gateway/internal/application/services"
	"github.com/DanielPopoola/avi-gateway/internal/config"
	"github.com/DanielPopoola/avi-gateway/internal/domain"
	"github.com/DanielPopoola/avi-gateway/internal/infrastructure/avi"
	"github.com/DanielPopoola/avi-gateway/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/avi-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/avi-gateway/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/avi-gateway/internal/telemetry"
	"github.com/DanielPopoola/avi-gateway/internal/worker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger(cfg.Primary.Env)
	slog.SetDefault(logger)

	logger.Info("starting address lookup gateway",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"protocol", cfg.AVI.Protocol,
		"is_live", cfg.AVI.IsLive,
		"audit", cfg.Audit.Enabled,
	)
	if cfg.AVI.LicenseKey == "" {
		logger.Warn("no default license key configured, callers must supply one")
	}

	ctx := context.Background()

	var (
		repo   application.LookupRepository
		health handlers.Pinger
		db     *postgres.DB
	)
	if cfg.Audit.Enabled {
		db, err = postgres.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		repo = postgres.NewLookupRepository(db.Pool)
		health = db
	}

	httpClient := &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}

	lookups := []application.AddressLookup{
		avi.NewFallbackInvoker(avi.NewRESTTransport(httpClient), avi.EndpointsFor(domain.ProtocolREST), logger),
		avi.NewFallbackInvoker(avi.NewSOAPTransport(httpClient), avi.EndpointsFor(domain.ProtocolSOAP), logger),
	}

	registry := prometheus.DefaultRegisterer
	lookupMetrics := telemetry.NewLookupMetrics("avi_gateway", registry)
	httpMetrics := middleware.NewHTTPMetrics("avi_gateway", registry)

	lookupService := services.NewLookupService(
		lookups,
		repo,
		lookupMetrics,
		services.LookupDefaults{
			LicenseKey:     cfg.AVI.LicenseKey,
			IsLive:         cfg.AVI.IsLive,
			Protocol:       cfg.AVI.Protocol,
			Timeout:        cfg.AVI.Timeout,
			OutputLanguage: cfg.AVI.OutputLanguage,
			MaxTimeout:     cfg.Server.AttemptBudget(),
		},
		logger,
	)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())
	handlers.NewHandlers(lookupService, health, logger).Register(mux)

	doc, err := api.GetSwagger()
	if err != nil {
		logger.Error("failed to load openapi document", "error", err)
		os.Exit(1)
	}
	validate, err := middleware.OpenAPIValidator(doc, logger)
	if err != nil {
		logger.Error("failed to build request validator", "error", err)
		os.Exit(1)
	}

	handler := validate(mux)
	handler = middleware.Recovery(logger)(handler)
	handler = httpMetrics.Middleware(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	if repo != nil {
		pruner := worker.NewAuditPruner(
			repo,
			cfg.Audit.Retention,
			cfg.Worker.Interval,
			cfg.Worker.BatchSize,
			logger,
		)
		go pruner.Start(workerCtx)
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

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
