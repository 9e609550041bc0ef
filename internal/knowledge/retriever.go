package knowledge

import (
	"context"
	"strconv"
	"strings"

	"github.com/EduardoZeca/Professor-Bob/internal/config"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// subjectAliases remaps the subject names used by the web frontend onto
// the corpus file stems.
var subjectAliases = map[string]string{
	"history":   "apostila_historia",
	"geography": "apostila_geografia",
}

// Retriever turns a user question into a bounded context string of the
// most relevant corpus chunks.
type Retriever struct {
	base     *Base
	embedder Embedder
	cache    *gocache.Cache
	searchK  int
	limit    int
	logger   *zap.Logger
}

func NewRetriever(base *Base, embedder Embedder, cfg config.RetrievalConfig, logger *zap.Logger) *Retriever {
	return &Retriever{
		base:     base,
		embedder: embedder,
		cache:    gocache.New(cfg.CacheTTL, cfg.CacheCleanup),
		searchK:  cfg.SearchK,
		limit:    cfg.ContextLimit,
		logger:   logger,
	}
}

// Retrieve returns the context for a question. The empty string signals
// "no grounding available": knowledge base not ready, query embedding
// failed, or nothing survived the subject filter. Retrieval failures are
// soft; they are logged, never propagated.
func (r *Retriever) Retrieve(ctx context.Context, question, subject string, limit int) string {
	if !r.base.Ready() {
		return ""
	}
	if limit <= 0 || limit > r.limit {
		limit = r.limit
	}

	if alias, ok := subjectAliases[subject]; ok {
		subject = alias
	}

	r.logger.Debug("retrieving context", zap.String("subject_filter", subject))

	cacheKey := subject + "\x1f" + strconv.Itoa(limit) + "\x1f" + question
	if cached, ok := r.cache.Get(cacheKey); ok {
		return cached.(string)
	}

	queryVector, err := r.embedder.EmbedQuery(ctx, question)
	if err != nil {
		r.logger.Warn("query embedding failed, returning empty context", zap.Error(err))
		return ""
	}

	matches, err := r.base.Search(queryVector, r.searchK)
	if err != nil {
		r.logger.Warn("index search failed, returning empty context", zap.Error(err))
		return ""
	}

	needle := strings.ToLower(subject)

	accepted := make([]string, 0, limit)
	for _, match := range matches {
		chunk, ok := r.base.ChunkAt(match.Position)
		if !ok {
			continue
		}

		if subject == "" || strings.Contains(strings.ToLower(chunk.Subject), needle) {
			accepted = append(accepted, chunk.Text)
		}
		if len(accepted) >= limit {
			break
		}
	}

	if len(accepted) == 0 {
		r.logger.Info("no relevant context found after search and filtering")
		return ""
	}

	context := strings.Join(accepted, "\n\n")
	r.cache.SetDefault(cacheKey, context)

	return context
}
