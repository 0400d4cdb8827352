package services

import (
	"fmt"
	"strings"
	"unicode"
)

// FallbackSuggestion is returned when no bullet line needs quantification,
// so the suggestion list is never empty.
const FallbackSuggestion = "Add measurable outcomes to your bullet points."

// maxSuggestionLineLen caps how much of a bullet line is echoed back.
const maxSuggestionLineLen = 60

type SuggestionService interface {
	Suggest(resumeText string) []string
}

type suggestionService struct {
	markers []string
}

func NewSuggestionService(markers []string) SuggestionService {
	if markers == nil {
		markers = DefaultBulletMarkers
	}

	return &suggestionService{markers: markers}
}

// Suggest implements SuggestionService. It scans the raw (non-normalized)
// resume text line by line; bullet lines that contain no digit produce a
// quantification hint. The rule is deliberately simple: digit presence, not
// numeric parsing.
func (s *suggestionService) Suggest(resumeText string) []string {
	suggestions := make([]string, 0)

	for _, line := range strings.Split(resumeText, "\n") {
		line = strings.TrimSpace(line)
		if !s.isBullet(line) || containsDigit(line) {
			continue
		}

		suggestions = append(suggestions, fmt.Sprintf(
			"Consider adding a number or metric to: '%s'",
			truncateLine(line, maxSuggestionLineLen),
		))
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, FallbackSuggestion)
	}

	return suggestions
}

func (s *suggestionService) isBullet(line string) bool {
	for _, marker := range s.markers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

func containsDigit(line string) bool {
	return strings.ContainsFunc(line, unicode.IsDigit)
}

func truncateLine(line string, max int) string {
	runes := []rune(line)
	if len(runes) <= max {
		return line
	}
	return string(runes[:max]) + "..."
}
