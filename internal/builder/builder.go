package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/EduardoZeca/Professor-Bob/internal/api"
	"github.com/EduardoZeca/Professor-Bob/internal/api/ask"
	"github.com/EduardoZeca/Professor-Bob/internal/config"
	"github.com/EduardoZeca/Professor-Bob/internal/integration/gemini"
	"github.com/EduardoZeca/Professor-Bob/internal/knowledge"
	"github.com/EduardoZeca/Professor-Bob/internal/usecase/answer"
	"go.uber.org/zap"
)

// geminiAPI bundles the two outbound boundaries both connector
// implementations satisfy.
type geminiAPI interface {
	knowledge.Embedder
	answer.Generator
}

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Initialize the Gemini connector (with mock support)
	var geminiConn geminiAPI
	if cfg.EnableMocks {
		logger.Info("Using mock Gemini connector")
		geminiConn = gemini.NewMockConnector(logger)
	} else {
		logger.Info("Using real Gemini connector")
		geminiConn = gemini.NewConnector(cfg.GeminiCfg, logger)
	}

	// Initialize the knowledge base synchronously: request serving only
	// starts once load-or-build has finished.
	store := knowledge.NewStore(cfg.KnowledgeCfg.IndexFile, cfg.KnowledgeCfg.MetadataFile, logger)
	batchEmbedder := knowledge.NewBatchEmbedder(
		geminiConn,
		cfg.KnowledgeCfg.EmbedDelay,
		cfg.KnowledgeCfg.ProgressEvery,
		logger,
	)

	base := knowledge.Bootstrap(ctx, cfg.KnowledgeCfg, store, batchEmbedder, logger)
	logger.Info("Knowledge base initialized",
		zap.Int("chunk_count", base.Len()),
		zap.Bool("ready", base.Ready()),
	)

	retriever := knowledge.NewRetriever(base, geminiConn, cfg.RetrievalCfg, logger)

	// Initialize use case and API handler
	answerUC := answer.NewUsecase(retriever, geminiConn, cfg.RetrievalCfg.ContextLimit, logger)
	askHandler := ask.NewHandler(answerUC, base)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(askHandler, cfg.CORSOrigins, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}
