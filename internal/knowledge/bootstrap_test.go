package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/EduardoZeca/Professor-Bob/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice/document"
	"go.uber.org/zap"
)

func writeCorpusDOCX(t *testing.T, path string, paragraphs []string) {
	t.Helper()
	doc := document.New()
	defer doc.Close()
	for _, text := range paragraphs {
		doc.AddParagraph().AddRun().AddText(text)
	}
	require.NoError(t, doc.SaveToFile(path))
}

func writeTextFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func bootstrapCfg(corpusDir, artifactDir string) config.KnowledgeConfig {
	return config.KnowledgeConfig{
		CorpusDir:     corpusDir,
		IndexFile:     filepath.Join(artifactDir, "vector_index.bin"),
		MetadataFile:  filepath.Join(artifactDir, "chunks_metadata.json"),
		ChunkSize:     1000,
		ChunkOverlap:  100,
		ProgressEvery: 50,
	}
}

func TestBootstrap_ColdStartAndRetrieve(t *testing.T) {
	corpusDir := t.TempDir()
	artifactDir := t.TempDir()
	// the body after each heading starts lowercase so the heading match
	// stops at the numbered title
	writeCorpusDOCX(t, filepath.Join(corpusDir, "apostila_historia.docx"), []string{
		"Bem-vindo ao material de estudos.",
		"1. INTRODUÇÃO",
		"a história é a ciência que estuda o passado humano e suas transformações.",
		"2. CONCLUSÃO",
		"o estudo do passado ilumina o presente e orienta o futuro.",
	})

	cfg := bootstrapCfg(corpusDir, artifactDir)
	store := NewStore(cfg.IndexFile, cfg.MetadataFile, zap.NewNop())
	embedder := newTestEmbedder()
	batch := NewBatchEmbedder(embedder, 0, cfg.ProgressEvery, zap.NewNop())

	base := Bootstrap(context.Background(), cfg, store, batch, zap.NewNop())
	require.True(t, base.Ready())
	require.Equal(t, 3, base.Len(), "preamble plus one chunk per section")

	chunk, ok := base.ChunkAt(0)
	require.True(t, ok)
	assert.Equal(t, "apostila_historia", chunk.Subject)
	assert.Nil(t, chunk.Topic)

	retriever := NewRetriever(base, embedder, retrievalCfg(), zap.NewNop())
	got := retriever.Retrieve(context.Background(), "o estudo do passado ilumina o presente", "history", 1)
	assert.Contains(t, got, "ilumina o presente")
	assert.NotContains(t, got, "ciência que estuda")
}

func TestBootstrap_WarmStartLoadsArtifacts(t *testing.T) {
	corpusDir := t.TempDir()
	artifactDir := t.TempDir()
	writeCorpusDOCX(t, filepath.Join(corpusDir, "apostila_geografia.docx"), []string{
		"O relevo brasileiro é formado por planaltos, planícies e depressões.",
	})

	cfg := bootstrapCfg(corpusDir, artifactDir)
	store := NewStore(cfg.IndexFile, cfg.MetadataFile, zap.NewNop())
	embedder := newTestEmbedder()
	batch := NewBatchEmbedder(embedder, 0, cfg.ProgressEvery, zap.NewNop())

	cold := Bootstrap(context.Background(), cfg, store, batch, zap.NewNop())
	require.True(t, cold.Ready())
	callsAfterCold := embedder.docCalls

	warm := Bootstrap(context.Background(), cfg, store, batch, zap.NewNop())
	require.True(t, warm.Ready())
	assert.Equal(t, cold.Len(), warm.Len())
	assert.Equal(t, callsAfterCold, embedder.docCalls, "warm start must not re-embed the corpus")
}

func TestBootstrap_MissingCorpusDir(t *testing.T) {
	cfg := bootstrapCfg(filepath.Join(t.TempDir(), "nonexistent"), t.TempDir())
	store := NewStore(cfg.IndexFile, cfg.MetadataFile, zap.NewNop())
	batch := NewBatchEmbedder(newTestEmbedder(), 0, cfg.ProgressEvery, zap.NewNop())

	base := Bootstrap(context.Background(), cfg, store, batch, zap.NewNop())
	require.NotNil(t, base)
	assert.False(t, base.Ready())
	assert.Zero(t, base.Len())
}

func TestBootstrap_IgnoresUnsupportedFiles(t *testing.T) {
	corpusDir := t.TempDir()
	artifactDir := t.TempDir()
	writeCorpusDOCX(t, filepath.Join(corpusDir, "apostila_historia.docx"), []string{
		"A república foi proclamada em 1889.",
	})
	writeTextFile(t, filepath.Join(corpusDir, "notas.txt"), "anotações soltas que não entram no corpus")

	cfg := bootstrapCfg(corpusDir, artifactDir)
	store := NewStore(cfg.IndexFile, cfg.MetadataFile, zap.NewNop())
	batch := NewBatchEmbedder(newTestEmbedder(), 0, cfg.ProgressEvery, zap.NewNop())

	base := Bootstrap(context.Background(), cfg, store, batch, zap.NewNop())
	require.True(t, base.Ready())
	require.Equal(t, 1, base.Len())

	chunk, ok := base.ChunkAt(0)
	require.True(t, ok)
	assert.Equal(t, "apostila_historia", chunk.Subject)
}
