package gemini

import (
	"context"
	"hash/fnv"
	"math"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockDimension is the vector size produced by the mock connector.
const MockDimension = 64

// MockConnector is a deterministic stand-in for the Gemini API. Embeddings
// are bag-of-words token hashes, so texts sharing vocabulary land close
// together under L2 distance, which is enough for local runs and tests.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) EmbedDocument(ctx context.Context, text string) ([]float32, error) {
	return m.embed(ctx, text, TaskTypeDocument)
}

func (m *MockConnector) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return m.embed(ctx, text, TaskTypeQuery)
}

func (m *MockConnector) embed(ctx context.Context, text string, taskType TaskType) ([]float32, error) {
	ctxzap.Debug(ctx, "[MOCK] embedding content", zap.String("task_type", string(taskType)))

	vec := make([]float32, MockDimension)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(token))
		vec[h.Sum32()%MockDimension]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}

	return vec, nil
}

func (m *MockConnector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating content", zap.Int("prompt_length", len(prompt)))

	return "[MOCK] Olá! Sou o Professor Bob. Esta é uma resposta gerada em modo de teste.", nil
}
