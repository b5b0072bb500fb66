package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	importpb "github.com/careerdock/resume-import/gen/proto/resumeimport/v1"
	"github.com/careerdock/resume-import/internal/common"
	"github.com/careerdock/resume-import/internal/export"
	"github.com/careerdock/resume-import/internal/extract"
	"github.com/careerdock/resume-import/internal/llm"
	"github.com/careerdock/resume-import/internal/llm/openai"
	"github.com/careerdock/resume-import/internal/pipeline"
	"github.com/careerdock/resume-import/internal/profile"
	"github.com/careerdock/resume-import/internal/repository"
	"github.com/careerdock/resume-import/internal/server"
	"github.com/careerdock/resume-import/internal/staging"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	profileRepo := repository.NewProfileRepository(entc, logger)
	sectionRepo := repository.NewSectionRepository(entc, logger)

	ocrClient := extract.NewOCRClient(extract.OCRConfig{
		BaseURL:         cfg.OCR.BaseURL,
		APIKey:          cfg.OCR.APIKey,
		Model:           cfg.OCR.Model,
		Timeout:         cfg.OCR.Timeout,
		SignedURLExpiry: cfg.OCR.SignedURLExpiry,
	}, logger)

	var ai llm.ResumeExtractor
	if cfg.LLM.APIKey != "" {
		ai = openai.NewClient(openai.Config{
			BaseURL:     cfg.LLM.BaseURL,
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	} else {
		logger.Warn("no extraction-model credential configured; heuristic tier only")
	}

	importer := pipeline.NewImporter(
		extract.NewExtractor(ocrClient, logger),
		profile.NewExtractor(ai, logger),
		logger,
	)
	store := staging.NewStore(sectionRepo, logger)
	exportSvc := export.NewService(entc, profileRepo, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	importpb.RegisterImportServiceServer(grpcServer,
		server.NewImportServer(importer, store, profileRepo, sectionRepo, logger))
	importpb.RegisterExportServiceServer(grpcServer,
		server.NewExportServer(exportSvc, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc server listening", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
