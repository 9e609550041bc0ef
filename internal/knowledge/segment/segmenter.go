package segment

import (
	"strings"

	"github.com/EduardoZeca/Professor-Bob/internal/entity"
)

// Segmenter combines section splitting with size-bounded chunking. Chunk
// boundaries never cross a detected heading: each section is chunked on
// its own.
type Segmenter struct {
	sections SectionSplitter
	splitter *Splitter
}

func NewSegmenter(sections SectionSplitter, splitter *Splitter) *Segmenter {
	return &Segmenter{
		sections: sections,
		splitter: splitter,
	}
}

// Chunks produces subject-labeled chunks for a whole document, headings
// dropped and no topic labels attached. Chunks appear in section order,
// then sub-chunk order.
func (s *Segmenter) Chunks(text, subject string) []entity.Chunk {
	var chunks []entity.Chunk
	for _, section := range s.sections.Sections(text) {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}

		for _, piece := range s.splitter.Split(section) {
			chunks = append(chunks, entity.Chunk{
				Subject: subject,
				Text:    piece,
			})
		}
	}

	return chunks
}

// TitledChunks produces subject-labeled chunks with each chunk carrying
// the heading of its section as topic label. Content before the first
// detected heading yields no chunks.
func (s *Segmenter) TitledChunks(text, subject string) []entity.Chunk {
	var chunks []entity.Chunk
	for _, section := range s.sections.TitledSections(text) {
		if section.Content == "" {
			continue
		}

		topic := section.Title
		for _, piece := range s.splitter.Split(section.Content) {
			chunks = append(chunks, entity.Chunk{
				Subject: subject,
				Topic:   &topic,
				Text:    piece,
			})
		}
	}

	return chunks
}
