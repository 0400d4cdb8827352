package models

import (
	"path/filepath"
	"strings"
)

// DocumentFormat is the declared format of an uploaded resume file.
type DocumentFormat string

const (
	FormatPDF   DocumentFormat = "pdf"
	FormatDOCX  DocumentFormat = "docx"
	FormatPlain DocumentFormat = "plain"
)

// Document is an uploaded resume payload. It lives for the duration of a
// single analysis request and is released once the report is produced.
type Document struct {
	Filename string
	Format   DocumentFormat
	Data     []byte
}

// DetectFormat infers the document format from the filename extension.
// Unknown extensions fall back to plain text rather than being rejected.
func DetectFormat(filename string) DocumentFormat {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	default:
		return FormatPlain
	}
}
