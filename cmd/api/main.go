package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/flood-risk-api/internal/adapter/gemini"
	httpadapter "github.com/couchcryptid/flood-risk-api/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/flood-risk-api/internal/adapter/kafka"
	"github.com/couchcryptid/flood-risk-api/internal/analysis"
	"github.com/couchcryptid/flood-risk-api/internal/config"
	"github.com/couchcryptid/flood-risk-api/internal/domain"
	"github.com/couchcryptid/flood-risk-api/internal/observability"
)

// analysisModel converts the optional gemini client to the domain interface
// without producing a typed-nil interface value.
func analysisModel(c *gemini.Client) domain.ModelClient {
	if c == nil {
		return nil
	}
	return c
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize the model client (fallback-only mode when no key is set).
	var model *gemini.Client
	if cfg.GeminiAPIKey != "" {
		model, err = gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("failed to init gemini client", "error", err)
			os.Exit(1)
		}
		defer model.Close()
		logger.Info("gemini model enabled", "model", cfg.GeminiModel, "timeout", cfg.ModelTimeout)
	} else {
		logger.Warn("GEMINI_API_KEY not set, serving simulated data only")
	}

	// Optional assessment-event publishing.
	var sink analysis.EventSink
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		sink = writer
		logger.Info("event publishing enabled", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	}

	service := analysis.New(analysisModel(model), sink, logger, metrics, cfg.ModelTimeout, cfg.AnalysisCacheSize)
	handler := httpadapter.NewHandler(service, cfg, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, handler, service, logger)

	metrics.ServiceUp.Set(1)
	defer metrics.ServiceUp.Set(0)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
