package ranking

import (
	"strings"

	"github.com/bhanuprakash-18/zeppy/internal/types"
)

// strictMatchThreshold is the minimum fraction of applicable criteria
// categories a job must satisfy to pass the strict filter.
const strictMatchThreshold = 0.5

func filterStrict(jobs []types.Job, criteria types.SearchCriteria) []types.Job {
	var filtered []types.Job
	for _, job := range jobs {
		if matchesStrict(job, criteria) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

// matchesStrict counts, per non-empty criteria category, whether any of its
// values matches the job, and requires at least half of the applicable
// categories to match. Zero applicable categories means a generic query and
// always passes.
func matchesStrict(job types.Job, criteria types.SearchCriteria) bool {
	matches := 0
	total := 0

	title := strings.ToLower(job.Title)
	if len(criteria.JobTitles) > 0 {
		total++
		for _, wanted := range criteria.JobTitles {
			if strings.Contains(title, wanted) || containsEveryWord(title, wanted) {
				matches++
				break
			}
		}
	}

	if len(criteria.Locations) > 0 {
		total++
		for _, location := range criteria.Locations {
			if strings.EqualFold(job.Location, location) {
				matches++
				break
			}
		}
	}

	department := strings.ToLower(job.Department)
	if len(criteria.Departments) > 0 {
		total++
		for _, dept := range criteria.Departments {
			if strings.Contains(department, strings.ToLower(dept)) {
				matches++
				break
			}
		}
	}

	jobType := strings.ToLower(job.Type)
	if len(criteria.JobTypes) > 0 {
		total++
		for _, wanted := range criteria.JobTypes {
			if strings.Contains(jobType, strings.ToLower(wanted)) {
				matches++
				break
			}
		}
	}

	if len(criteria.Skills) > 0 {
		total++
		text := descriptionText(job)
		for _, skill := range criteria.Skills {
			if strings.Contains(text, skill) {
				matches++
				break
			}
		}
	}

	if len(criteria.Keywords) > 0 {
		total++
		text := searchText(job)
		for _, keyword := range criteria.Keywords {
			if strings.Contains(text, keyword) {
				matches++
				break
			}
		}
	}

	return total == 0 || float64(matches)/float64(total) >= strictMatchThreshold
}

// filterFuzzy keeps a job when any single extracted value appears anywhere
// in the concatenated job text, or when an extracted location overlaps the
// job's location in either direction.
func filterFuzzy(jobs []types.Job, criteria types.SearchCriteria) []types.Job {
	terms := make([]string, 0,
		len(criteria.JobTitles)+len(criteria.Skills)+len(criteria.Locations)+
			len(criteria.Departments)+len(criteria.JobTypes)+len(criteria.Keywords))
	terms = append(terms, criteria.JobTitles...)
	terms = append(terms, criteria.Skills...)
	terms = append(terms, criteria.Locations...)
	terms = append(terms, criteria.Departments...)
	terms = append(terms, criteria.JobTypes...)
	terms = append(terms, criteria.Keywords...)

	var filtered []types.Job
	for _, job := range jobs {
		if matchesFuzzy(job, terms, criteria.Locations) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

func matchesFuzzy(job types.Job, terms []string, locations []string) bool {
	location := strings.ToLower(job.Location)
	for _, wanted := range locations {
		lower := strings.ToLower(wanted)
		if strings.Contains(location, lower) || strings.Contains(lower, location) {
			return true
		}
	}

	text := fullText(job)
	for _, term := range terms {
		if strings.Contains(text, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// filterByLocation is the last-resort fallback: case-insensitive substring
// overlap between extracted locations and the job location, either direction.
func filterByLocation(jobs []types.Job, locations []string) []types.Job {
	var filtered []types.Job
	for _, job := range jobs {
		location := strings.ToLower(job.Location)
		for _, wanted := range locations {
			lower := strings.ToLower(wanted)
			if strings.Contains(location, lower) || strings.Contains(lower, location) {
				filtered = append(filtered, job)
				break
			}
		}
	}
	return filtered
}

// containsEveryWord reports whether every word of the criterion appears in
// the job title.
func containsEveryWord(title, criterion string) bool {
	for _, word := range strings.Fields(criterion) {
		if !strings.Contains(title, word) {
			return false
		}
	}
	return true
}

// descriptionText is the lowercase concatenation of description and
// requirements, used for skill matching.
func descriptionText(job types.Job) string {
	return strings.ToLower(job.Description + " " + strings.Join(job.Requirements, " "))
}

// searchText adds the title, used for keyword matching and scoring.
func searchText(job types.Job) string {
	return strings.ToLower(job.Title + " " + job.Description + " " + strings.Join(job.Requirements, " "))
}

// fullText additionally folds in department and location for fuzzy matching.
func fullText(job types.Job) string {
	return strings.ToLower(job.Title + " " + job.Description + " " + job.Department + " " +
		job.Location + " " + strings.Join(job.Requirements, " "))
}
