package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sailakshmi-repaka/LoanShield/internal/application/usecase"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/port"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/service"
	"github.com/sailakshmi-repaka/LoanShield/internal/infrastructure/config"
	"github.com/sailakshmi-repaka/LoanShield/internal/infrastructure/csvstore"
	"github.com/sailakshmi-repaka/LoanShield/internal/infrastructure/messaging"
	"github.com/sailakshmi-repaka/LoanShield/internal/infrastructure/playstore"
	grpcpresentation "github.com/sailakshmi-repaka/LoanShield/internal/presentation/grpc"
	"github.com/sailakshmi-repaka/LoanShield/internal/presentation/rest"
	"github.com/sailakshmi-repaka/LoanShield/pkg/auth"
	"github.com/sailakshmi-repaka/LoanShield/pkg/kafka"
	"github.com/sailakshmi-repaka/LoanShield/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Service: "loanshield",
		Level:   cfg.LogLevel,
		Format:  "json",
	})
	slog.SetDefault(logger)

	logger.Info("starting loanshield",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: "loanshield",
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without metrics", "error", err)
	} else {
		defer meterProvider.Shutdown(context.Background())
	}

	// JWT signing key.
	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		if cfg.Environment != "development" {
			logger.Error("JWT_SECRET is required outside development")
			os.Exit(1)
		}
		jwtSecret = "loanshield-dev-secret"
		logger.Warn("JWT_SECRET not set, using development default")
	}
	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret: jwtSecret,
		Issuer: cfg.JWTIssuer,
	})
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// File-backed stores.
	registryRepo := csvstore.NewRegistryRepository(cfg.RegistryFile, logger)

	reportRepo, err := csvstore.NewReportRepository(cfg.ReportsFile)
	if err != nil {
		logger.Error("failed to load report ledger", "error", err)
		os.Exit(1)
	}

	userRepo, err := csvstore.NewUserRepository(cfg.UsersFile)
	if err != nil {
		logger.Error("failed to load user store", "error", err)
		os.Exit(1)
	}

	// Store catalog.
	var catalog port.StoreCatalog
	if cfg.PlayStoreStub {
		logger.Warn("using stub Play Store catalog")
		catalog = playstore.NewStub()
	} else {
		catalog = playstore.NewClient(cfg.PlayStoreBaseURL)
	}

	// Event publishing.
	producer := kafka.NewProducer(kafka.Config{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   "loanshield.events",
	})
	defer producer.Close()
	eventPublisher := messaging.NewKafkaPublisher(producer, logger)

	// Wire domain services.
	analyzer := service.NewReviewAnalyzer(
		catalog,
		service.NewKeywordSentimentClassifier(),
		service.NewKeywordPermissionClassifier(),
		port.ReviewQuery{
			Locale:   cfg.ReviewLocale,
			Region:   cfg.ReviewRegion,
			MaxCount: cfg.ReviewMaxCount,
		},
		logger,
	)
	matcher := service.NewRegistryMatcher(registryRepo, logger)
	engine := service.NewVerdictEngine()

	// Wire use cases.
	checkAppUC := usecase.NewCheckApp(catalog, reportRepo, eventPublisher, analyzer, matcher, engine, logger)
	submitReportUC := usecase.NewSubmitReport(reportRepo, eventPublisher, logger)
	getAppReportsUC := usecase.NewGetAppReports(reportRepo)
	registerUserUC := usecase.NewRegisterUser(userRepo)
	authenticateUserUC := usecase.NewAuthenticateUser(userRepo, jwtService)

	// gRPC server.
	grpcHandler := grpcpresentation.NewTrustServiceHandler(
		checkAppUC, submitReportUC, getAppReportsUC, registerUserUC, authenticateUserUC, logger,
	)
	grpcServer := grpcpresentation.NewServer(grpcHandler, cfg.GRPCAddress(), logger, jwtService)

	// HTTP server (health checks and metrics).
	healthHandler := rest.NewHealthHandler(logger, func() map[string]string {
		return map[string]string{
			"registry": "ok",
			"ledger":   "ok",
			"users":    "ok",
		}
	})
	httpMux := http.NewServeMux()
	healthHandler.RegisterRoutes(httpMux)
	if metricsHandler != nil {
		httpMux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      httpMux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("loanshield started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
		"environment", cfg.Environment,
	)

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	logger.Info("shutting down loanshield")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("loanshield stopped")
}
