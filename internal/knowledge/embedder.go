package knowledge

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// EmbeddedText is one successfully embedded chunk text, tagged with the
// position of its source in the input slice.
type EmbeddedText struct {
	Position int
	Vector   []float32
}

// BatchEmbedder embeds chunk texts one by one with a fixed inter-call
// delay to stay under provider rate limits.
type BatchEmbedder struct {
	embedder      Embedder
	delay         time.Duration
	progressEvery int
	logger        *zap.Logger
}

func NewBatchEmbedder(embedder Embedder, delay time.Duration, progressEvery int, logger *zap.Logger) *BatchEmbedder {
	if progressEvery <= 0 {
		progressEvery = 50
	}
	return &BatchEmbedder{
		embedder:      embedder,
		delay:         delay,
		progressEvery: progressEvery,
		logger:        logger,
	}
}

// EmbedAll embeds every text in order. A failed call is logged and
// skipped, never retried, so the result may have positional gaps; callers
// must reconcile against the input by Position, not by result index.
func (b *BatchEmbedder) EmbedAll(ctx context.Context, texts []string) []EmbeddedText {
	results := make([]EmbeddedText, 0, len(texts))

	for i, text := range texts {
		vector, err := b.embedder.EmbedDocument(ctx, text)
		if err != nil {
			b.logger.Warn("embedding call failed, skipping chunk",
				zap.Int("position", i),
				zap.Error(err),
			)
		} else {
			results = append(results, EmbeddedText{Position: i, Vector: vector})
		}

		if (i+1)%b.progressEvery == 0 {
			b.logger.Info("embedding progress",
				zap.Int("processed", i+1),
				zap.Int("total", len(texts)),
			)
		}

		if i+1 == len(texts) {
			break
		}

		select {
		case <-ctx.Done():
			b.logger.Warn("embedding batch cancelled",
				zap.Int("processed", i+1),
				zap.Int("total", len(texts)),
			)
			return results
		case <-time.After(b.delay):
		}
	}

	return results
}
