// Package extract converts corpus documents into cleaned plain text.
package extract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/EduardoZeca/Professor-Bob/internal/entity"
	"github.com/ledongthuc/pdf"
	"github.com/unidoc/unioffice/document"
)

var (
	newlineRun    = regexp.MustCompile(`[\r\n]+`)
	whitespaceRun = regexp.MustCompile(`\s{2,}`)
)

// Text extracts the full textual content of a document, dispatching on the
// file extension, and returns it cleaned. Only PDF and DOCX are supported.
func Text(path string) (string, error) {
	var raw string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		raw, err = pdfText(path)
	case ".docx":
		raw, err = docxText(path)
	default:
		return "", fmt.Errorf("%s: %w", path, entity.ErrUnsupportedFormat)
	}

	if err != nil {
		return "", err
	}

	return Clean(raw), nil
}

// Clean normalizes extracted text: newline runs become a single space, any
// remaining run of two or more whitespace characters collapses to one
// space, and surrounding whitespace is trimmed.
func Clean(raw string) string {
	cleaned := newlineRun.ReplaceAllString(raw, " ")
	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// pdfText concatenates the plain text of every page in order.
func pdfText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract pdf page %d of %s: %w", i, path, err)
		}
		b.WriteString(text)
	}

	return b.String(), nil
}

// docxText concatenates the text of every paragraph in order, one paragraph
// per line.
func docxText(path string) (string, error) {
	doc, err := document.Open(path)
	if err != nil {
		return "", fmt.Errorf("open docx %s: %w", path, err)
	}
	defer doc.Close()

	var b strings.Builder
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			b.WriteString(run.Text())
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}
