package services

import (
	"sort"
	"strings"
)

type KeywordExtractorService interface {
	Extract(tokens []string) []string
}

type keywordExtractorService struct {
	vocabulary []string
	topK       int
}

// NewKeywordExtractorService builds a keyword extractor over the given
// curated skill vocabulary, supplemented by the topK most frequent tokens.
func NewKeywordExtractorService(vocabulary []string, topK int) KeywordExtractorService {
	if vocabulary == nil {
		vocabulary = DefaultSkillVocabulary
	}
	if topK <= 0 {
		topK = DefaultTopKeywords
	}

	lowered := make([]string, len(vocabulary))
	for i, term := range vocabulary {
		lowered[i] = strings.ToLower(term)
	}

	return &keywordExtractorService{
		vocabulary: lowered,
		topK:       topK,
	}
}

// Extract implements KeywordExtractorService. Curated terms present in the
// token set come first, in vocabulary order, followed by the topK most
// frequent remaining tokens (ties broken by first occurrence in the text).
// The result contains no duplicates. An empty token sequence yields an
// empty keyword list.
func (k *keywordExtractorService) Extract(tokens []string) []string {
	keywords := make([]string, 0, k.topK)
	if len(tokens) == 0 {
		return keywords
	}

	present := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		present[t] = true
	}

	included := make(map[string]bool, k.topK)
	for _, term := range k.vocabulary {
		if present[term] && !included[term] {
			keywords = append(keywords, term)
			included[term] = true
		}
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, t := range tokens {
		if included[t] {
			continue
		}
		if _, seen := firstSeen[t]; !seen {
			firstSeen[t] = i
		}
		counts[t]++
	}

	ranked := make([]string, 0, len(counts))
	for t := range counts {
		ranked = append(ranked, t)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})

	if len(ranked) > k.topK {
		ranked = ranked[:k.topK]
	}

	return append(keywords, ranked...)
}
