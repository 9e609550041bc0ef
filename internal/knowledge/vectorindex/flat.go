// Package vectorindex provides a flat (exhaustive) L2 nearest-neighbor
// index with binary on-disk persistence.
package vectorindex

import (
	"encoding/gob"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
)

// Match is one search hit. Distance is the squared Euclidean distance to
// the query; Position is -1 when the index holds fewer vectors than were
// requested, and callers must skip such entries.
type Match struct {
	Position int
	Distance float32
}

// Flat is an exact nearest-neighbor index over fixed-dimensionality
// vectors. It is append-only during build and read-only afterwards; the
// caller serializes build against searches.
type Flat struct {
	dim     int
	vectors [][]float32
}

func NewFlat(dim int) (*Flat, error) {
	if dim <= 0 {
		return nil, errors.New("vectorindex: dimension must be positive")
	}
	return &Flat{dim: dim}, nil
}

func (f *Flat) Dimension() int { return f.dim }

func (f *Flat) Len() int { return len(f.vectors) }

// Add appends vectors in order; their insertion position is their search
// position.
func (f *Flat) Add(vectors ...[]float32) error {
	for _, v := range vectors {
		if len(v) != f.dim {
			return fmt.Errorf("vectorindex: vector dimension %d does not match index dimension %d", len(v), f.dim)
		}
	}
	f.vectors = append(f.vectors, vectors...)
	return nil
}

// Search returns exactly k matches ordered by ascending distance, padded
// with Position -1 entries when the index holds fewer than k vectors.
func (f *Flat) Search(query []float32, k int) ([]Match, error) {
	if len(query) != f.dim {
		return nil, fmt.Errorf("vectorindex: query dimension %d does not match index dimension %d", len(query), f.dim)
	}
	if k <= 0 {
		return nil, nil
	}

	matches := make([]Match, 0, len(f.vectors))
	for i, v := range f.vectors {
		matches = append(matches, Match{Position: i, Distance: squaredL2(query, v)})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Position < matches[j].Position
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	for len(matches) < k {
		matches = append(matches, Match{Position: -1, Distance: float32(math.Inf(1))})
	}

	return matches, nil
}

func squaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// persistedIndex is the gob wire form of a Flat index.
type persistedIndex struct {
	Dimension int
	Vectors   [][]float32
}

// WriteFile serializes the index to path, creating parent directories as
// needed.
func (f *Flat) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create index file: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(persistedIndex{
		Dimension: f.dim,
		Vectors:   f.vectors,
	}); err != nil {
		return fmt.Errorf("encode index: %w", err)
	}

	return nil
}

// ReadFile deserializes an index previously written with WriteFile.
func ReadFile(path string) (*Flat, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open index file: %w", err)
	}
	defer file.Close()

	var p persistedIndex
	if err := gob.NewDecoder(file).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}

	if p.Dimension <= 0 {
		return nil, errors.New("vectorindex: persisted index has invalid dimension")
	}

	return &Flat{dim: p.Dimension, vectors: p.Vectors}, nil
}
