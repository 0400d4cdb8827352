package services

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/Mtar786/resume-ats-analyzer/internal/models"
)

type TextExtractorService interface {
	Extract(doc models.Document) (string, error)
	ExtractFile(path string, format models.DocumentFormat) (string, error)
}

type textExtractorService struct{}

func NewTextExtractorService() TextExtractorService {
	return &textExtractorService{}
}

// Extract converts an uploaded document into plain UTF-8 text, dispatching
// on the declared format tag. Unknown formats decode as plain text.
func (s *textExtractorService) Extract(doc models.Document) (string, error) {
	switch doc.Format {
	case models.FormatPDF:
		return s.extractPDF(doc.Data)
	case models.FormatDOCX:
		return s.extractDOCX(doc.Data)
	default:
		return strings.ToValidUTF8(string(doc.Data), "�"), nil
	}
}

// ExtractFile reads a staged upload from disk and extracts its text.
func (s *textExtractorService) ExtractFile(path string, format models.DocumentFormat) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read staged file: %w", err)
	}

	return s.Extract(models.Document{
		Filename: path,
		Format:   format,
		Data:     data,
	})
}

func (s *textExtractorService) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to open PDF: %v", ErrDocumentParse, err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages that fail to yield text contribute nothing
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return strings.TrimSpace(textBuilder.String()), nil
}

func (s *textExtractorService) extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to open DOCX: %v", ErrDocumentParse, err)
	}
	defer doc.Close()

	return docxContentToText(doc.Editable().GetContent()), nil
}

var docxTagPattern = regexp.MustCompile(`<[^>]+>`)

// docxContentToText flattens word/document.xml into paragraph text: each
// paragraph becomes one line, in document order.
func docxContentToText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = strings.ReplaceAll(content, "<w:br/>", "\n")
	content = docxTagPattern.ReplaceAllString(content, "")
	content = html.UnescapeString(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
