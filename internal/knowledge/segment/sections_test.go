package segment_test

import (
	"testing"

	"github.com/EduardoZeca/Professor-Bob/internal/knowledge/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Bodies start lowercase: the heading pattern's character class includes
// spaces, so an uppercase word right after a heading would be absorbed
// into the heading match.
const fixtureText = "Apresentação da apostila. " +
	"1. INTRODUÇÃO a história é a ciência que estuda o passado humano. " +
	"2. CONCLUSÃO o estudo do passado ilumina o presente."

func TestSections(t *testing.T) {
	splitter := segment.NewHeadingSplitter()

	pieces := splitter.Sections(fixtureText)
	require.Len(t, pieces, 3)

	assert.Contains(t, pieces[0], "Apresentação da apostila")
	assert.Contains(t, pieces[1], "ciência que estuda o passado")
	assert.Contains(t, pieces[2], "ilumina o presente")

	for _, piece := range pieces {
		assert.NotContains(t, piece, "INTRODUÇÃO")
		assert.NotContains(t, piece, "CONCLUSÃO")
	}
}

func TestSections_NoHeadings(t *testing.T) {
	splitter := segment.NewHeadingSplitter()

	pieces := splitter.Sections("texto corrido sem nenhuma seção numerada")
	require.Len(t, pieces, 1)
	assert.Equal(t, "texto corrido sem nenhuma seção numerada", pieces[0])
}

func TestTitledSections(t *testing.T) {
	splitter := segment.NewHeadingSplitter()

	sections := splitter.TitledSections(fixtureText)
	require.Len(t, sections, 2)

	assert.Equal(t, "1. INTRODUÇÃO", sections[0].Title)
	assert.Contains(t, sections[0].Content, "ciência que estuda o passado")

	assert.Equal(t, "2. CONCLUSÃO", sections[1].Title)
	assert.Contains(t, sections[1].Content, "ilumina o presente")

	// content before the first heading never becomes a section
	for _, section := range sections {
		assert.NotContains(t, section.Content, "Apresentação da apostila")
	}
}

func TestTitledSections_ShortUppercaseRunIsNotAHeading(t *testing.T) {
	splitter := segment.NewHeadingSplitter()

	// uppercase run below the three-character minimum
	sections := splitter.TitledSections("1. Ab texto qualquer")
	assert.Empty(t, sections)
}

func TestSegmenter_Chunks(t *testing.T) {
	segmenter := segment.NewSegmenter(segment.NewHeadingSplitter(), segment.NewSplitter(1000, 100))

	chunks := segmenter.Chunks(fixtureText, "apostila_historia")
	require.Len(t, chunks, 3)

	for _, chunk := range chunks {
		assert.Equal(t, "apostila_historia", chunk.Subject)
		assert.Nil(t, chunk.Topic)
	}

	// preamble is kept in the untitled variant
	assert.Contains(t, chunks[0].Text, "Apresentação da apostila")
}

func TestSegmenter_TitledChunks(t *testing.T) {
	segmenter := segment.NewSegmenter(segment.NewHeadingSplitter(), segment.NewSplitter(1000, 100))

	chunks := segmenter.TitledChunks(fixtureText, "apostila_historia")
	require.Len(t, chunks, 2)

	topics := map[string]bool{}
	for _, chunk := range chunks {
		require.NotNil(t, chunk.Topic)
		topics[*chunk.Topic] = true
		assert.NotContains(t, chunk.Text, "Apresentação da apostila")
	}

	// one distinct topic per detected heading
	assert.Len(t, topics, 2)
	assert.True(t, topics["1. INTRODUÇÃO"])
	assert.True(t, topics["2. CONCLUSÃO"])
}
