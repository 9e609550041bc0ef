package knowledge

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/EduardoZeca/Professor-Bob/internal/config"
	"github.com/EduardoZeca/Professor-Bob/internal/entity"
	"github.com/EduardoZeca/Professor-Bob/internal/knowledge/extract"
	"github.com/EduardoZeca/Professor-Bob/internal/knowledge/segment"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Bootstrap initializes the knowledge base at process start, before
// request serving begins: warm start from the persisted artifacts when
// they exist, otherwise a full ingestion of the corpus directory. Every
// failure mode degrades to an empty base; the process still serves
// requests, answering without grounding.
func Bootstrap(ctx context.Context, cfg config.KnowledgeConfig, store *Store, embedder *BatchEmbedder, logger *zap.Logger) *Base {
	base, err := store.Load()
	switch {
	case err == nil:
		logger.Info("knowledge base loaded from disk", zap.Int("chunk_count", base.Len()))
		return base
	case errors.Is(err, entity.ErrArtifactsNotFound):
		// cold start below
	default:
		logger.Error("failed to load persisted knowledge base, starting empty", zap.Error(err))
		return &Base{}
	}

	log := logger.With(zap.String("build_id", uuid.NewString()))
	log.Info("building knowledge base from corpus", zap.String("corpus_dir", cfg.CorpusDir))

	chunks := ingestCorpus(cfg, log)
	if len(chunks) == 0 {
		log.Warn("no chunks produced from corpus, knowledge base stays empty")
		return &Base{}
	}

	base, err = store.Build(ctx, chunks, embedder)
	if err != nil {
		log.Error("knowledge base build failed, starting empty", zap.Error(err))
		return &Base{}
	}

	return base
}

// ingestCorpus enumerates the supported documents of the corpus directory
// and turns each into chunks: subject = file stem, whole-document
// segmentation without topic labels. A file that fails extraction is
// skipped; the rest of the corpus still ingests.
func ingestCorpus(cfg config.KnowledgeConfig, logger *zap.Logger) []entity.Chunk {
	entries, err := os.ReadDir(cfg.CorpusDir)
	if err != nil {
		logger.Error("corpus directory not readable", zap.String("corpus_dir", cfg.CorpusDir), zap.Error(err))
		return nil
	}

	segmenter := segment.NewSegmenter(
		segment.NewHeadingSplitter(),
		segment.NewSplitter(cfg.ChunkSize, cfg.ChunkOverlap),
	)

	var chunks []entity.Chunk
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".pdf" && ext != ".docx" {
			continue
		}

		path := filepath.Join(cfg.CorpusDir, entry.Name())
		logger.Info("extracting document", zap.String("path", path))

		text, err := extract.Text(path)
		if err != nil {
			logger.Warn("document extraction failed, skipping file",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}

		subject := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		fileChunks := segmenter.Chunks(text, subject)
		logger.Info("document segmented",
			zap.String("subject", subject),
			zap.Int("chunk_count", len(fileChunks)),
		)

		chunks = append(chunks, fileChunks...)
	}

	return chunks
}
