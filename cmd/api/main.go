package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/observability"
	"alfredoptarigan/resume-matcher/internal/server"
	"alfredoptarigan/resume-matcher/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := observability.InitLogger(cfg.IsDevelopment(), cfg.Observability.LogLevel)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("✅ Config loaded successfully",
		zap.String("env", cfg.Server.Env),
		zap.String("upload_path", cfg.Storage.UploadPath),
		zap.String("naming", cfg.Storage.Naming),
	)

	var tp *trace.TracerProvider
	if cfg.Observability.TracingEnabled {
		tp, err = observability.InitTracerProvider(logger)
		if err != nil {
			logger.Fatal("❌ Failed to initialize tracing", zap.Error(err))
		}
		logger.Info("✅ Tracing enabled")
	}

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath, newFileNamer(cfg.Storage.Naming))
	if err := storageService.EnsureUploadDir(); err != nil {
		logger.Fatal("❌ Failed to create upload directory", zap.Error(err))
	}
	logger.Info("✅ Services initialized successfully")

	metrics := observability.NewMetrics()
	app := server.New(cfg, logger, storageService, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("🚀 Server starting", zap.String("addr", addr))
		return app.Listen(addr)
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("🛑 Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if tp != nil {
			defer observability.ShutdownTracerProvider(shutdownCtx, tp, logger)
		}
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("❌ Server stopped with error", zap.Error(err))
	}
	logger.Info("✅ Server stopped")
}

func newFileNamer(strategy string) services.FileNamer {
	if strategy == config.NamingUUID {
		return services.NewUUIDNamer()
	}
	return services.NewTimestampNamer(nil)
}
