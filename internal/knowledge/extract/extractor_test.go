package extract_test

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/EduardoZeca/Professor-Bob/internal/entity"
	"github.com/EduardoZeca/Professor-Bob/internal/knowledge/extract"
	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice/document"
)

var multiWhitespace = regexp.MustCompile(`\s{2,}`)

func writePDFFixture(t *testing.T, dir string, lines []string) string {
	t.Helper()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	for _, line := range lines {
		pdf.Cell(0, 10, line)
		pdf.Ln(12)
	}

	path := filepath.Join(dir, "apostila_historia.pdf")
	require.NoError(t, pdf.OutputFileAndClose(path))
	return path
}

func writeDOCXFixture(t *testing.T, dir string, paragraphs []string) string {
	t.Helper()

	doc := document.New()
	defer doc.Close()
	for _, text := range paragraphs {
		para := doc.AddParagraph()
		run := para.AddRun()
		run.AddText(text)
	}

	path := filepath.Join(dir, "apostila_geografia.docx")
	require.NoError(t, doc.SaveToFile(path))
	return path
}

func TestText_PDF(t *testing.T) {
	path := writePDFFixture(t, t.TempDir(), []string{
		"A Revolucao Industrial comecou na Inglaterra.",
		"As maquinas a vapor mudaram a producao.",
	})

	text, err := extract.Text(path)
	require.NoError(t, err)

	assert.Contains(t, text, "Revolucao Industrial")
	assert.Contains(t, text, "maquinas a vapor")
	assert.NotContains(t, text, "\n")
	assert.False(t, multiWhitespace.MatchString(text), "extracted text must not contain whitespace runs")
}

func TestText_DOCX(t *testing.T) {
	path := writeDOCXFixture(t, t.TempDir(), []string{
		"O clima tropical    domina o Brasil.",
		"As chuvas se concentram no verão.",
	})

	text, err := extract.Text(path)
	require.NoError(t, err)

	assert.Contains(t, text, "clima tropical domina")
	assert.Contains(t, text, "chuvas se concentram no verão")
	assert.NotContains(t, text, "\n")
	assert.False(t, multiWhitespace.MatchString(text))
}

func TestText_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notas.txt")
	require.NoError(t, os.WriteFile(path, []byte("qualquer coisa"), 0o644))

	_, err := extract.Text(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrUnsupportedFormat))
}

func TestText_MissingFile(t *testing.T) {
	_, err := extract.Text(filepath.Join(t.TempDir(), "inexistente.pdf"))
	assert.Error(t, err)
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "newline runs become a single space",
			in:   "primeira linha\n\n\nsegunda linha",
			want: "primeira linha segunda linha",
		},
		{
			name: "whitespace runs collapse",
			in:   "muitos     espaços\t\taqui",
			want: "muitos espaços aqui",
		},
		{
			name: "surrounding whitespace trimmed",
			in:   "   texto central   ",
			want: "texto central",
		},
		{
			name: "carriage returns handled",
			in:   "linha um\r\nlinha dois",
			want: "linha um linha dois",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract.Clean(tt.in)
			assert.Equal(t, tt.want, got)
			assert.False(t, multiWhitespace.MatchString(got))
			assert.False(t, strings.ContainsRune(got, '\n'))
		})
	}
}
