package segment

// Splitter cuts text into chunks of at most chunkSize runes with exactly
// overlap runes shared between consecutive chunks, preferring to break at
// a paragraph, then a sentence, then a word boundary before falling back
// to a hard cut.
type Splitter struct {
	chunkSize int
	overlap   int
}

func NewSplitter(chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = 0
	}
	return &Splitter{chunkSize: chunkSize, overlap: overlap}
}

func (s *Splitter) Split(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= s.chunkSize {
		return []string{text}
	}

	var chunks []string
	start := 0
	for {
		end := start + s.chunkSize
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}

		end = s.breakPoint(runes, start, end)
		chunks = append(chunks, string(runes[start:end]))
		start = end - s.overlap
	}

	return chunks
}

// breakPoint picks the latest natural boundary at or before limit. The
// boundary must land after start+overlap so the next chunk always makes
// progress past the overlapped region.
func (s *Splitter) breakPoint(runes []rune, start, limit int) int {
	min := start + s.overlap + 1

	// paragraph break: cut after a blank line
	for i := limit; i >= min && i >= 2; i-- {
		if runes[i-2] == '\n' && runes[i-1] == '\n' {
			return i
		}
	}

	// sentence break: cut after ". "
	for i := limit; i >= min && i >= 2; i-- {
		if runes[i-2] == '.' && runes[i-1] == ' ' {
			return i
		}
	}

	// word break: cut after a space
	for i := limit; i >= min && i >= 1; i-- {
		if runes[i-1] == ' ' {
			return i
		}
	}

	// hard cut
	return limit
}
