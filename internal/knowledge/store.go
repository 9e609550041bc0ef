package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/EduardoZeca/Professor-Bob/internal/entity"
	"github.com/EduardoZeca/Professor-Bob/internal/knowledge/vectorindex"
	"go.uber.org/zap"
)

// Store owns the two persisted knowledge base artifacts: the binary vector
// index and the parallel chunk metadata JSON. The pair is written only
// after a successful, length-matched build.
type Store struct {
	indexPath    string
	metadataPath string
	logger       *zap.Logger
}

func NewStore(indexPath, metadataPath string, logger *zap.Logger) *Store {
	return &Store{
		indexPath:    indexPath,
		metadataPath: metadataPath,
		logger:       logger,
	}
}

// Build embeds every chunk text, constructs the index and persists both
// artifacts. If any chunk failed to embed, the produced vectors no longer
// match the chunks one-to-one and the whole build is aborted: no index is
// created and nothing is persisted.
func (s *Store) Build(ctx context.Context, chunks []entity.Chunk, embedder *BatchEmbedder) (*Base, error) {
	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	results := embedder.EmbedAll(ctx, texts)

	// An empty corpus is a failed build too, not a valid empty index.
	if len(results) == 0 || len(results) != len(chunks) {
		s.logger.Error("embedding count mismatch, aborting knowledge base build",
			zap.Int("embeddings", len(results)),
			zap.Int("chunks", len(chunks)),
		)
		return nil, entity.ErrEmbeddingCountMismatch
	}

	// Dimensionality is discovered from the first vector and fixed for the
	// lifetime of the index.
	index, err := vectorindex.NewFlat(len(results[0].Vector))
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	for _, result := range results {
		if err := index.Add(result.Vector); err != nil {
			return nil, fmt.Errorf("add vector at position %d: %w", result.Position, err)
		}
	}

	if err := s.persist(index, chunks); err != nil {
		return nil, err
	}

	s.logger.Info("knowledge base built and persisted",
		zap.Int("chunk_count", len(chunks)),
		zap.Int("dimension", index.Dimension()),
	)

	return &Base{index: index, chunks: chunks}, nil
}

// Load deserializes both artifacts. It returns ErrArtifactsNotFound when
// either file is missing, and ErrArtifactMismatch when the index and the
// metadata disagree on length.
func (s *Store) Load() (*Base, error) {
	if !fileExists(s.indexPath) || !fileExists(s.metadataPath) {
		return nil, entity.ErrArtifactsNotFound
	}

	index, err := vectorindex.ReadFile(s.indexPath)
	if err != nil {
		return nil, fmt.Errorf("load vector index: %w", err)
	}

	data, err := os.ReadFile(s.metadataPath)
	if err != nil {
		return nil, fmt.Errorf("read chunk metadata: %w", err)
	}

	var chunks []entity.Chunk
	if err := json.Unmarshal(data, &chunks); err != nil {
		return nil, fmt.Errorf("decode chunk metadata: %w", err)
	}

	if index.Len() != len(chunks) {
		return nil, fmt.Errorf("index holds %d vectors but metadata holds %d chunks: %w",
			index.Len(), len(chunks), entity.ErrArtifactMismatch)
	}

	return &Base{index: index, chunks: chunks}, nil
}

// persist writes the index and the metadata. The pair is logically atomic;
// a crash between the two writes leaves artifacts that Load rejects via
// the length check.
func (s *Store) persist(index *vectorindex.Flat, chunks []entity.Chunk) error {
	if err := index.WriteFile(s.indexPath); err != nil {
		return fmt.Errorf("persist vector index: %w", err)
	}

	data, err := json.MarshalIndent(chunks, "", "    ")
	if err != nil {
		return fmt.Errorf("encode chunk metadata: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.metadataPath), 0o755); err != nil {
		return fmt.Errorf("create metadata dir: %w", err)
	}

	if err := os.WriteFile(s.metadataPath, data, 0o644); err != nil {
		return fmt.Errorf("persist chunk metadata: %w", err)
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
