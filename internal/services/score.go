package services

type ScoreService interface {
	Score(jobTokens, resumeTokens []string) int
}

type scoreService struct{}

func NewScoreService() ScoreService {
	return &scoreService{}
}

// Score implements ScoreService. It returns the percentage of unique job
// description tokens also present in the resume token set, rounded to the
// nearest integer (ties round half up). A job description with no tokens
// scores 0. The metric is asymmetric: the job description is the reference
// set, so a resume covering every job token scores 100 regardless of how
// much extra content it carries.
func (s *scoreService) Score(jobTokens, resumeTokens []string) int {
	jobSet := uniqueTokens(jobTokens)
	if len(jobSet) == 0 {
		return 0
	}

	resumeSet := uniqueTokens(resumeTokens)

	matched := 0
	for t := range jobSet {
		if resumeSet[t] {
			matched++
		}
	}

	return int(float64(matched)/float64(len(jobSet))*100 + 0.5)
}

func uniqueTokens(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
