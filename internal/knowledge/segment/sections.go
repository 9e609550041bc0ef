// Package segment splits cleaned document text into topic-labeled,
// size-bounded chunks suitable for embedding.
package segment

import (
	"regexp"
	"strings"
)

// Section is a heading-delimited portion of a document.
type Section struct {
	Title   string
	Content string
}

// SectionSplitter splits document text into labeled sections. The heading
// detection is corpus-specific, so alternate corpora can plug in a
// different implementation without touching the chunking logic.
type SectionSplitter interface {
	// Sections returns the heading-free content pieces of the text,
	// including any content before the first heading. Text without
	// headings yields a single piece.
	Sections(text string) []string

	// TitledSections pairs each heading with the content that follows it.
	// Content before the first heading is dropped.
	TitledSections(text string) []Section
}

// Apostila headings look like "3. INTRODUÇÃO": a numeric marker, a period,
// a space and an uppercase run of at least three characters drawn from the
// Latin alphabet plus accented vowels, cedilla and spaces.
var headingPattern = regexp.MustCompile(`\d+\.\s[A-ZÁÉÍÓÚÂÊÔÃÕÇ ]{3,}`)

// HeadingSplitter detects numbered uppercase headings.
type HeadingSplitter struct {
	pattern *regexp.Regexp
}

func NewHeadingSplitter() *HeadingSplitter {
	return &HeadingSplitter{pattern: headingPattern}
}

func (s *HeadingSplitter) Sections(text string) []string {
	locs := s.pattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}

	pieces := make([]string, 0, len(locs)+1)
	prev := 0
	for _, loc := range locs {
		pieces = append(pieces, text[prev:loc[0]])
		prev = loc[1]
	}
	pieces = append(pieces, text[prev:])

	return pieces
}

func (s *HeadingSplitter) TitledSections(text string) []Section {
	locs := s.pattern.FindAllStringIndex(text, -1)

	sections := make([]Section, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}

		sections = append(sections, Section{
			Title:   strings.TrimSpace(text[loc[0]:loc[1]]),
			Content: strings.TrimSpace(text[loc[1]:end]),
		})
	}

	return sections
}
