package knowledge

import "context"

// Embedder is the outbound embedding boundary. Document and query
// embeddings are distinct modes of the external model and must not be
// mixed: an index built from document embeddings is searched with query
// embeddings.
type Embedder interface {
	EmbedDocument(ctx context.Context, text string) ([]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}
