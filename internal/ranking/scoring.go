package ranking

import (
	"strings"

	"github.com/bhanuprakash-18/zeppy/internal/types"
)

// Score weights. These exact values are load-bearing: response ordering and
// the test suite depend on this arithmetic.
const (
	titleExactScore      = 100
	titleSubstringScore  = 75
	titleWordScore       = 50
	locationExactScore   = 50
	departmentScore      = 30
	skillScore           = 25
	jobTypeScore         = 20
	keywordPerOccurrence = 5
)

// relevanceScore computes the additive relevance of a job for the given
// criteria. Each criterion value contributes independently.
func relevanceScore(job types.Job, criteria types.SearchCriteria) float64 {
	score := 0.0

	title := strings.ToLower(job.Title)
	for _, wanted := range criteria.JobTitles {
		switch {
		case title == strings.ToLower(wanted):
			score += titleExactScore
		case strings.Contains(title, wanted):
			score += titleSubstringScore
		case containsAnyWord(title, wanted):
			score += titleWordScore
		}
	}

	for _, location := range criteria.Locations {
		if strings.EqualFold(job.Location, location) {
			score += locationExactScore
		}
	}

	department := strings.ToLower(job.Department)
	for _, dept := range criteria.Departments {
		if strings.Contains(department, strings.ToLower(dept)) {
			score += departmentScore
		}
	}

	if len(criteria.Skills) > 0 {
		text := descriptionText(job)
		for _, skill := range criteria.Skills {
			if strings.Contains(text, skill) {
				score += skillScore
			}
		}
	}

	jobType := strings.ToLower(job.Type)
	for _, wanted := range criteria.JobTypes {
		if strings.Contains(jobType, strings.ToLower(wanted)) {
			score += jobTypeScore
		}
	}

	if len(criteria.Keywords) > 0 {
		text := searchText(job)
		for _, keyword := range criteria.Keywords {
			score += float64(strings.Count(text, strings.ToLower(keyword)) * keywordPerOccurrence)
		}
	}

	return score
}

func containsAnyWord(title, criterion string) bool {
	for _, word := range strings.Fields(criterion) {
		if strings.Contains(title, word) {
			return true
		}
	}
	return false
}
