package gemini

import (
	"context"
	"fmt"
	"net/http"

	"github.com/EduardoZeca/Professor-Bob/internal/config"
	pkghttp "github.com/EduardoZeca/Professor-Bob/pkg/http"
	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.GeminiConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.GeminiConnectorConfig,
	logger *zap.Logger,
) *Connector {
	connCfg := &pkghttp.ConnectorConfig{
		Logger:  logger,
		BaseURL: cfg.Url,
	}

	connector := pkghttp.NewConnector(
		connCfg,
		pkghttp.WithRequestTimeout(cfg.RequestTimeout),
		pkghttp.WithConnClientTimeout(cfg.ConnTimeout),
		pkghttp.WithClientKeepAlive(cfg.KeepAlive),
		pkghttp.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkghttp.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkghttp.WithRequestLogging(),
		pkghttp.WithAPIKey("x-goog-api-key", cfg.APIKey),
	)

	return &Connector{
		connector: connector,
		config:    cfg,
		logger:    logger,
	}
}

// EmbedDocument produces the ingestion-time embedding vector for a chunk
// of corpus text.
func (c *Connector) EmbedDocument(ctx context.Context, text string) ([]float32, error) {
	return c.embed(ctx, text, TaskTypeDocument)
}

// EmbedQuery produces the retrieval-time embedding vector for a user
// question. Query embeddings use a distinct task type and are bounded by
// the shorter EmbedTimeout.
func (c *Connector) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.EmbedTimeout)
	defer cancel()

	return c.embed(ctx, text, TaskTypeQuery)
}

func (c *Connector) embed(ctx context.Context, text string, taskType TaskType) ([]float32, error) {
	endpoint := fmt.Sprintf("/v1beta/models/%s:embedContent", c.config.EmbeddingModel)

	req := embedContentRequest{
		Model:    "models/" + c.config.EmbeddingModel,
		Content:  content{Parts: []contentPart{{Text: text}}},
		TaskType: taskType,
	}

	var resp embedContentResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}

	if len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("embed content: empty embedding in response")
	}

	return resp.Embedding.Values, nil
}

// Generate produces the final answer text for an assembled prompt. The call
// is bounded by GenerateTimeout and retried per the connector retry config.
func (c *Connector) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.GenerateTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("/v1beta/models/%s:generateContent", c.config.GenerationModel)

	req := generateContentRequest{
		Contents: []content{{Parts: []contentPart{{Text: prompt}}}},
	}

	opts := append(c.config.Retry.ToRetryOptions(), retry.Context(ctx))

	answer, err := retry.DoWithData(func() (string, error) {
		var resp generateContentResponse
		if err := c.connector.DoRequest(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
			return "", err
		}

		if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("no candidates in response")
		}

		return resp.Candidates[0].Content.Parts[0].Text, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	ctxzap.Debug(ctx, "content generated", zap.Int("answer_length", len(answer)))

	return answer, nil
}
