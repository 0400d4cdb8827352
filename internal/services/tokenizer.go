package services

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenizerService interface {
	Normalize(text string) []string
}

type tokenizerService struct {
	stopwords   map[string]bool
	minTokenLen int
}

// NewTokenizerService builds a tokenizer with the given stopword list and
// minimum token length. Zero or negative values select the defaults.
func NewTokenizerService(stopwords []string, minTokenLen int) TokenizerService {
	if stopwords == nil {
		stopwords = DefaultStopwords
	}
	if minTokenLen <= 0 {
		minTokenLen = DefaultMinTokenLength
	}

	set := make(map[string]bool, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = true
	}

	return &tokenizerService{
		stopwords:   set,
		minTokenLen: minTokenLen,
	}
}

// Normalize implements TokenizerService. It lowercases the text, treats any
// non-letter, non-digit rune as a separator, and drops stopwords and tokens
// shorter than the configured minimum. Pure and idempotent: normalizing
// already-normalized text yields the same sequence.
func (t *tokenizerService) Normalize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		w := word.String()
		word.Reset()
		if w == "" || t.stopwords[w] {
			return
		}
		if utf8.RuneCountInString(w) < t.minTokenLen {
			return
		}
		tokens = append(tokens, w)
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}
