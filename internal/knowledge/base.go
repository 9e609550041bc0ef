package knowledge

import (
	"github.com/EduardoZeca/Professor-Bob/internal/entity"
	"github.com/EduardoZeca/Professor-Bob/internal/knowledge/vectorindex"
)

// Base pairs the vector index with its parallel chunk metadata. Position i
// in the index corresponds to position i in the chunk slice. A Base is
// immutable once returned from Build or Load and safe for concurrent
// readers; an empty Base stands for "knowledge base unavailable".
type Base struct {
	index  *vectorindex.Flat
	chunks []entity.Chunk
}

// Ready reports whether the base holds an initialized, non-empty index.
func (b *Base) Ready() bool {
	return b != nil && b.index != nil && b.index.Len() > 0
}

// Len returns the number of indexed chunks.
func (b *Base) Len() int {
	if b == nil || b.index == nil {
		return 0
	}
	return b.index.Len()
}

// Search returns the k nearest chunks to the query vector, ascending by L2
// distance.
func (b *Base) Search(query []float32, k int) ([]vectorindex.Match, error) {
	if !b.Ready() {
		return nil, entity.ErrIndexNotReady
	}
	return b.index.Search(query, k)
}

// ChunkAt returns the chunk at an index position. Negative or out-of-range
// positions report ok=false and must be skipped by callers.
func (b *Base) ChunkAt(position int) (entity.Chunk, bool) {
	if b == nil || position < 0 || position >= len(b.chunks) {
		return entity.Chunk{}, false
	}
	return b.chunks[position], true
}
