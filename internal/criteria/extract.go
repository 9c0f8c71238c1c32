// Package criteria maps normalized user text to a structured search query
// via fixed synonym tables.
package criteria

import (
	"strings"

	"github.com/bhanuprakash-18/zeppy/internal/types"
)

// minKeywordLength is the exclusive lower bound for free keyword tokens.
const minKeywordLength = 2

// Extract builds SearchCriteria from normalized text. Surface forms are
// matched by substring containment, not word boundaries: short canonical
// labels can false-positive inside longer words. That is an accepted
// precision/recall tradeoff of the synonym design, not something to fix.
func Extract(text string) types.SearchCriteria {
	lower := strings.ToLower(text)

	criteria := types.SearchCriteria{
		JobTitles:   matchCategory(lower, jobTitleSynonyms),
		Skills:      matchCategory(lower, skillSynonyms),
		Locations:   matchCategory(lower, locationSynonyms),
		Departments: matchCategory(lower, departmentSynonyms),
		JobTypes:    matchCategory(lower, jobTypeSynonyms),
	}

	// Experience keeps only the last matching label: single slot, last wins.
	for _, entry := range experienceSynonyms {
		for _, surface := range entry.surfaces {
			if strings.Contains(lower, surface) {
				criteria.Experience = entry.canonical
			}
		}
	}

	// Every whitespace token longer than two characters becomes a free
	// keyword. Duplicates are kept on purpose; keyword scoring counts
	// occurrences.
	for _, word := range strings.Fields(lower) {
		if len(word) > minKeywordLength {
			criteria.Keywords = append(criteria.Keywords, word)
		}
	}

	return criteria
}

// matchCategory returns the canonical labels whose surface forms occur in
// the text, deduplicated, in table order.
func matchCategory(text string, table synonymTable) []string {
	var matched []string
	for _, entry := range table {
		for _, surface := range entry.surfaces {
			if strings.Contains(text, surface) {
				matched = append(matched, entry.canonical)
				break
			}
		}
	}
	return matched
}
