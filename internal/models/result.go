package models

// AnalysisReport is the aggregate result of one resume analysis. It is
// assembled once by the analyzer and never mutated afterwards.
type AnalysisReport struct {
	ATSScore    int      `json:"ats_score"`
	Keywords    []string `json:"keywords"`
	Suggestions []string `json:"suggestions"`
}
