package services

import (
	"context"
	"fmt"

	"github.com/Mtar786/resume-ats-analyzer/internal/models"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, doc models.Document, jobDescription string) (*models.AnalysisReport, error)
}

type analyzerService struct {
	extractor TextExtractorService
	tokenizer TokenizerService
	keywords  KeywordExtractorService
	scorer    ScoreService
	suggester SuggestionService
}

func NewAnalyzerService(
	extractor TextExtractorService,
	tokenizer TokenizerService,
	keywords KeywordExtractorService,
	scorer ScoreService,
	suggester SuggestionService,
) AnalyzerService {
	return &analyzerService{
		extractor: extractor,
		tokenizer: tokenizer,
		keywords:  keywords,
		scorer:    scorer,
		suggester: suggester,
	}
}

// Analyze implements AnalyzerService. It runs the full pipeline for one
// request: extract text, normalize resume and job description independently,
// extract keywords, score the overlap, and collect suggestions from the raw
// resume text (bullet markers and line breaks must survive, so suggestions
// never see normalized text). Any extraction failure aborts the pipeline;
// no partial report is returned. An empty job description is not an error:
// the score is simply 0.
func (a *analyzerService) Analyze(ctx context.Context, doc models.Document, jobDescription string) (*models.AnalysisReport, error) {
	resumeText, err := a.extractor.Extract(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}

	resumeTokens := a.tokenizer.Normalize(resumeText)
	jobTokens := a.tokenizer.Normalize(jobDescription)

	return &models.AnalysisReport{
		ATSScore:    a.scorer.Score(jobTokens, resumeTokens),
		Keywords:    a.keywords.Extract(resumeTokens),
		Suggestions: a.suggester.Suggest(resumeText),
	}, nil
}
