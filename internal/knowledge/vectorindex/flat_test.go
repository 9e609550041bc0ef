package vectorindex_test

import (
	"path/filepath"
	"testing"

	"github.com/EduardoZeca/Professor-Bob/internal/knowledge/vectorindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildIndex(t *testing.T) *vectorindex.Flat {
	t.Helper()

	index, err := vectorindex.NewFlat(2)
	require.NoError(t, err)
	require.NoError(t, index.Add(
		[]float32{0, 0},
		[]float32{1, 0},
		[]float32{0, 3},
		[]float32{5, 5},
	))
	return index
}

func TestNewFlat_InvalidDimension(t *testing.T) {
	_, err := vectorindex.NewFlat(0)
	assert.Error(t, err)
}

func TestAdd_DimensionMismatch(t *testing.T) {
	index, err := vectorindex.NewFlat(2)
	require.NoError(t, err)

	assert.Error(t, index.Add([]float32{1, 2, 3}))
	assert.Equal(t, 0, index.Len())
}

func TestSearch_OrdersByAscendingDistance(t *testing.T) {
	index := buildIndex(t)

	matches, err := index.Search([]float32{0.9, 0}, 4)
	require.NoError(t, err)
	require.Len(t, matches, 4)

	assert.Equal(t, 1, matches[0].Position)
	assert.Equal(t, 0, matches[1].Position)
	assert.Equal(t, 2, matches[2].Position)
	assert.Equal(t, 3, matches[3].Position)

	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i-1].Distance, matches[i].Distance)
	}
}

func TestSearch_PadsWithInvalidPositions(t *testing.T) {
	index := buildIndex(t)

	matches, err := index.Search([]float32{0, 0}, 7)
	require.NoError(t, err)
	require.Len(t, matches, 7)

	for _, match := range matches[4:] {
		assert.Equal(t, -1, match.Position)
	}
}

func TestSearch_QueryDimensionMismatch(t *testing.T) {
	index := buildIndex(t)

	_, err := index.Search([]float32{1}, 3)
	assert.Error(t, err)
}

func TestWriteReadRoundTrip(t *testing.T) {
	index := buildIndex(t)
	path := filepath.Join(t.TempDir(), "data", "vector_index.bin")

	require.NoError(t, index.WriteFile(path))

	loaded, err := vectorindex.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, index.Dimension(), loaded.Dimension())
	assert.Equal(t, index.Len(), loaded.Len())

	query := []float32{2, 1}
	before, err := index.Search(query, 4)
	require.NoError(t, err)
	after, err := loaded.Search(query, 4)
	require.NoError(t, err)

	assert.Equal(t, before, after, "search results must be identical after a persistence round trip")
}

func TestReadFile_Missing(t *testing.T) {
	_, err := vectorindex.ReadFile(filepath.Join(t.TempDir(), "nope.bin"))
	assert.Error(t, err)
}
