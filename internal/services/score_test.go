package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	scorer := NewScoreService()

	tests := []struct {
		name         string
		jobTokens    []string
		resumeTokens []string
		want         int
	}{
		{
			name:         "full coverage",
			jobTokens:    []string{"python", "sql"},
			resumeTokens: []string{"python", "sql", "docker"},
			want:         100,
		},
		{
			name:         "no overlap",
			jobTokens:    []string{"rust", "embedded"},
			resumeTokens: []string{"python", "sql"},
			want:         0,
		},
		{
			name:         "partial coverage",
			jobTokens:    []string{"python", "sql", "kafka", "react"},
			resumeTokens: []string{"python", "sql"},
			want:         50,
		},
		{
			name:         "empty job description scores zero",
			jobTokens:    nil,
			resumeTokens: []string{"python"},
			want:         0,
		},
		{
			name:         "empty resume scores zero",
			jobTokens:    []string{"python"},
			resumeTokens: nil,
			want:         0,
		},
		{
			name:         "duplicate job tokens count once",
			jobTokens:    []string{"python", "python", "sql"},
			resumeTokens: []string{"python"},
			want:         50,
		},
		{
			name:         "rounds half up",
			jobTokens:    []string{"one", "two", "three", "four", "five", "six", "seven", "eight"},
			resumeTokens: []string{"one", "two", "three"},
			want:         38, // 3/8 = 37.5
		},
		{
			name:         "rounds down below half",
			jobTokens:    []string{"one", "two", "three"},
			resumeTokens: []string{"one"},
			want:         33, // 1/3 = 33.33
		},
		{
			name:         "extra resume content does not lower the score",
			jobTokens:    []string{"python"},
			resumeTokens: []string{"python", "basket", "weaving", "yodeling"},
			want:         100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scorer.Score(tt.jobTokens, tt.resumeTokens))
		})
	}
}

func TestScoreAlwaysWithinRange(t *testing.T) {
	scorer := NewScoreService()

	var jobTokens, resumeTokens []string
	for i := 0; i < 50; i++ {
		jobTokens = append(jobTokens, fmt.Sprintf("job%d", i))
		if i%3 == 0 {
			resumeTokens = append(resumeTokens, fmt.Sprintf("job%d", i))
		}
		resumeTokens = append(resumeTokens, fmt.Sprintf("resume%d", i))
	}

	score := scorer.Score(jobTokens, resumeTokens)
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
}
