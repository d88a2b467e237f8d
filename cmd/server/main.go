package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"pnr-parser-service/internal/domain/repository"
	"pnr-parser-service/internal/infrastructure/config"
	"pnr-parser-service/internal/infrastructure/persistence"
	"pnr-parser-service/internal/infrastructure/router"
	"pnr-parser-service/internal/interface/httpapi"
	auditRepo "pnr-parser-service/internal/interface/repository"
	"pnr-parser-service/internal/usecase"
	"pnr-parser-service/pkg/logger"
	"pnr-parser-service/pkg/metrics"
	"pnr-parser-service/pkg/pnr"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger().Fatal("Failed to load config", "error", err)
	}

	// Create logger
	zapLog := logger.NewLoggerWithLevel(cfg.LogLevel)
	defer zapLog.Sync()
	log := zapLog.With("version", cfg.AppVersion)
	log.Info("Starting PNR Parser Service", "strategy", cfg.SegmentStrategy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(cfg.MetricsNamespace, reg)

	// Parse audit store
	var audits repository.ParseAuditRepository = auditRepo.NewNoopParseAuditRepository()
	var disconnect func()
	if cfg.AuditEnabled() {
		log.Info("Connecting to MongoDB")
		mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		disconnect = func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Error("MongoDB disconnect error", "error", err)
			}
		}

		db := persistence.GetDatabase(mongoClient, cfg.MongoDB)
		audits, err = auditRepo.NewMongoParseAuditRepository(ctx, db, cfg.AuditCollection)
		if err != nil {
			log.Fatal("Failed to set up parse audit repository", "error", err)
		}
	} else {
		log.Info("Parse audit disabled, MONGODB_DSN not set")
	}

	// Parser and service
	segments, err := pnr.StrategyByName(cfg.SegmentStrategy)
	if err != nil {
		log.Fatal("Invalid segment strategy", "error", err)
	}
	parser := pnr.NewParser(segments, log.With("component", "pnr"))
	pnrService := usecase.NewPNRService(parser, audits, m, log)
	pnrHandler := httpapi.NewPNRHandler(pnrService, cfg.MaxBodyBytes, log)

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: router.NewRouter(pnrHandler, router.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Gatherer:       reg,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig.String())

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if disconnect != nil {
		disconnect()
	}

	log.Info("PNR Parser Service stopped")
}
