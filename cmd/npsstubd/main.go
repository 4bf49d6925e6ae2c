package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openisa/nps-stub/internal/application/usecase"
	"github.com/openisa/nps-stub/internal/domain/model"
	"github.com/openisa/nps-stub/internal/domain/port"
	"github.com/openisa/nps-stub/internal/infrastructure/config"
	"github.com/openisa/nps-stub/internal/infrastructure/memory"
	"github.com/openisa/nps-stub/internal/infrastructure/messaging"
	pgstore "github.com/openisa/nps-stub/internal/infrastructure/postgres"
	grpcpresentation "github.com/openisa/nps-stub/internal/presentation/grpc"
	"github.com/openisa/nps-stub/internal/presentation/rest"
	"github.com/openisa/nps-stub/internal/presentation/rest/middleware"
	pkgauth "github.com/openisa/nps-stub/pkg/auth"
	pkgkafka "github.com/openisa/nps-stub/pkg/kafka"
	"github.com/openisa/nps-stub/pkg/observability"
	pkgpostgres "github.com/openisa/nps-stub/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   getEnv("LOG_LEVEL", "info"),
		Format:  "json",
		Service: cfg.ServiceName,
	})

	logger.Info("starting nps-stub",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"store_backend", cfg.StoreBackend,
	)

	// Tracing is optional; the stub keeps running without a collector.
	if cfg.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.ServiceName,
			Endpoint:    cfg.OTLPEndpoint,
			Insecure:    true,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer shutdown(ctx)
		}
	}

	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	stubMetrics := observability.NewStubMetrics()

	// Report store.
	store, cleanup, err := buildStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize report store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := seedStore(ctx, store, cfg, logger); err != nil {
		logger.Error("failed to seed report store", "error", err)
		os.Exit(1)
	}

	// Audit publisher.
	var audit port.AuditPublisher
	if cfg.KafkaBroker != "" {
		producer := pkgkafka.NewProducer(pkgkafka.Config{
			Brokers: []string{cfg.KafkaBroker},
		})
		defer producer.Close()
		audit = messaging.NewKafkaPublisher(producer, logger)
		logger.Info("audit events will be published to kafka", "broker", cfg.KafkaBroker)
	} else {
		audit = messaging.NewLogPublisher(logger)
	}

	// Use cases.
	submitReturnsUC := usecase.NewSubmitReturnsUseCase(audit, logger)
	submitDeclarationUC := usecase.NewSubmitDeclarationUseCase(audit, logger)
	fetchReportUC := usecase.NewFetchReportUseCase(store, audit, logger)

	// Optional JWT validation behind the bearer gate.
	var jwtSvc *pkgauth.JWTService
	if cfg.AuthMode == config.AuthJWT {
		jwtSvc = pkgauth.NewJWTService(pkgauth.JWTConfig{
			Secret: cfg.JWTSecret,
			Issuer: cfg.ServiceName,
		})
	}

	// HTTP server.
	apiMux := http.NewServeMux()
	stubHandler := rest.NewStubHandler(submitReturnsUC, submitDeclarationUC, fetchReportUC, stubMetrics, logger)
	stubHandler.RegisterRoutes(apiMux)

	var api http.Handler = apiMux
	api = middleware.AuthMiddleware(jwtSvc, nil)(api)
	if cfg.RateLimitRPS > 0 {
		api = middleware.RateLimitMiddleware(middleware.NewRateLimiter(cfg.RateLimitRPS))(api)
	}

	rootMux := http.NewServeMux()
	rootMux.Handle("/nps/", api)
	rootMux.Handle("GET /metrics", metricsHandler)
	healthHandler := rest.NewHealthHandler(store, logger)
	healthHandler.RegisterRoutes(rootMux)

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      middleware.LoggingMiddleware(logger)(rootMux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// gRPC server.
	grpcHandler := grpcpresentation.NewStubHandler(submitReturnsUC, submitDeclarationUC, fetchReportUC)
	grpcServer := grpcpresentation.NewServer(grpcHandler, logger)

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	logger.Info("shutting down servers")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("nps-stub stopped")
}

// buildStore constructs the configured report store backend. The
// returned cleanup releases backend resources and is safe to call once.
func buildStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.ReportStore, func(), error) {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		if err := pkgpostgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
			return nil, nil, err
		}

		dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
		defer dbCancel()

		pool, err := pkgpostgres.NewPool(dbCtx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to database")
		return pgstore.NewReportStore(pool), pool.Close, nil

	case config.StoreMemory:
		return memory.NewReportStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// seedReport is the on-disk shape of one seeded report.
type seedReport struct {
	Reference     string               `json:"reference"`
	TaxYear       string               `json:"taxYear"`
	Month         string               `json:"month"`
	ReturnResults []model.ReturnResult `json:"returnResults"`
}

// seedStore loads reports into the store: the compiled-in defaults for
// the memory backend, plus the SEED_FILE contents when configured.
func seedStore(ctx context.Context, store port.ReportStore, cfg config.Config, logger *slog.Logger) error {
	var reports []model.MonthlyReport

	if cfg.StoreBackend == config.StoreMemory {
		reports = memory.DefaultReports()
	}

	if cfg.SeedFile != "" {
		raw, err := os.ReadFile(cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}

		var seeds []seedReport
		if err := json.Unmarshal(raw, &seeds); err != nil {
			return fmt.Errorf("parse seed file: %w", err)
		}
		for _, s := range seeds {
			reports = append(reports, model.MonthlyReport{
				Key:     model.ReportKey{Reference: s.Reference, TaxYear: s.TaxYear, Month: s.Month},
				Results: s.ReturnResults,
			})
		}
	}

	for _, report := range reports {
		if err := store.Save(ctx, report); err != nil {
			return fmt.Errorf("seed report %s/%s/%s: %w", report.Key.Reference, report.Key.TaxYear, report.Key.Month, err)
		}
	}
	if len(reports) > 0 {
		logger.Info("seeded report store", "reports", len(reports))
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
