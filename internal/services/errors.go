package services

import "errors"

var (
	// ErrDocumentParse marks a file that claims a structured format (PDF or
	// DOCX) but cannot be parsed. Retrying is pointless: the same bytes fail
	// the same way, so the error surfaces to the caller instead.
	ErrDocumentParse = errors.New("document cannot be parsed")

	// ErrEmptyDocument marks a request that carries no document at all.
	ErrEmptyDocument = errors.New("no document provided")
)
