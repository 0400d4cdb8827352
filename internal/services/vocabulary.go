package services

const (
	// DefaultTopKeywords is how many frequency-ranked tokens supplement the
	// curated skill matches.
	DefaultTopKeywords = 10

	// DefaultMinTokenLength drops very short tokens ("a", "of", "to") that
	// the stopword list does not already cover.
	DefaultMinTokenLength = 3
)

// DefaultStopwords lists common English words filtered out before keyword
// extraction and scoring. Intentionally short; callers needing a localized
// or larger list can pass their own.
var DefaultStopwords = []string{
	"the", "and", "to", "of", "in", "a", "for", "on", "with", "as", "is",
	"are", "was", "were", "be", "been", "it", "that", "this", "by", "at",
	"an", "from", "or", "we", "you", "your", "our", "their", "they", "i",
	"have", "has", "had", "will", "would", "can", "could", "should", "may",
	"if", "but", "about", "into", "up", "out", "than", "more", "so", "such",
}

// DefaultSkillVocabulary is the curated list of domain terms recognized as
// skills when they appear in a resume. Order matters: curated matches are
// reported in this order.
var DefaultSkillVocabulary = []string{
	"python", "java", "javascript", "typescript", "golang", "sql",
	"html", "css", "react", "angular", "node", "django", "flask",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "git",
	"linux", "postgres", "mysql", "redis", "kafka", "grpc", "rest",
	"pandas", "numpy", "tensorflow", "pytorch", "spark",
	"communication", "leadership", "teamwork", "agile", "analysis",
}

// DefaultBulletMarkers are the line prefixes recognized as bullet points
// when scanning a resume for unquantified achievements.
var DefaultBulletMarkers = []string{"-", "*", "•"}
