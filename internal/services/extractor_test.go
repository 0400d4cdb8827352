package services

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mtar786/resume-ats-analyzer/internal/models"
)

func TestExtractPlainText(t *testing.T) {
	extractor := NewTextExtractorService()

	text := "Skilled in Python and SQL.\n- Built dashboard"
	got, err := extractor.Extract(models.Document{
		Filename: "resume.txt",
		Format:   models.FormatPlain,
		Data:     []byte(text),
	})

	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestExtractPlainTextInvalidUTF8(t *testing.T) {
	extractor := NewTextExtractorService()

	got, err := extractor.Extract(models.Document{
		Filename: "resume.txt",
		Format:   models.FormatPlain,
		Data:     []byte{'o', 'k', 0xff, 0xfe},
	})

	require.NoError(t, err)
	assert.Contains(t, got, "ok")
	assert.True(t, len(got) > 2)
}

func TestExtractCorruptPDF(t *testing.T) {
	extractor := NewTextExtractorService()

	_, err := extractor.Extract(models.Document{
		Filename: "resume.pdf",
		Format:   models.FormatPDF,
		Data:     []byte("this is not a pdf"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDocumentParse)
}

func TestExtractCorruptDOCX(t *testing.T) {
	extractor := NewTextExtractorService()

	_, err := extractor.Extract(models.Document{
		Filename: "resume.docx",
		Format:   models.FormatDOCX,
		Data:     []byte("this is not a zip archive"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDocumentParse)
}

func TestExtractDOCX(t *testing.T) {
	extractor := NewTextExtractorService()

	data := buildDocx(t, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`+
		`<w:p><w:r><w:t>Skilled in Python and SQL.</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>- Built dashboard</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	got, err := extractor.Extract(models.Document{
		Filename: "resume.docx",
		Format:   models.FormatDOCX,
		Data:     data,
	})

	require.NoError(t, err)
	assert.Equal(t, "Skilled in Python and SQL.\n- Built dashboard", got)
}

func TestDocxContentToText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "paragraphs become lines",
			content: `<w:p><w:r><w:t>first</w:t></w:r></w:p><w:p><w:r><w:t>second</w:t></w:r></w:p>`,
			want:    "first\nsecond",
		},
		{
			name:    "entities unescaped",
			content: `<w:p><w:t>C&amp;I team</w:t></w:p>`,
			want:    "C&I team",
		},
		{
			name:    "tabs preserved",
			content: `<w:p><w:t>left</w:t><w:tab/><w:t>right</w:t></w:p>`,
			want:    "left\tright",
		},
		{
			name:    "empty document",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, docxContentToText(tt.content))
		})
	}
}

func TestExtractFile(t *testing.T) {
	extractor := NewTextExtractorService()

	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain resume text"), 0644))

	got, err := extractor.ExtractFile(path, models.FormatPlain)
	require.NoError(t, err)
	assert.Equal(t, "plain resume text", got)
}

func TestExtractFileMissing(t *testing.T) {
	extractor := NewTextExtractorService()

	_, err := extractor.ExtractFile(filepath.Join(t.TempDir(), "nope.txt"), models.FormatPlain)
	require.Error(t, err)
}

// buildDocx assembles a minimal .docx archive around the given document.xml
// body.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	doc, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = doc.Write([]byte(documentXML))
	require.NoError(t, err)

	rels, err := w.Create("word/_rels/document.xml.rels")
	require.NoError(t, err)
	_, err = rels.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	return buf.Bytes()
}
