// Package ranking filters the job corpus against extracted search criteria
// and orders the survivors by relevance.
package ranking

import (
	"sort"

	"github.com/bhanuprakash-18/zeppy/internal/types"
)

// Rank runs the filter cascade over the corpus and returns the survivors
// scored and sorted most relevant first. Ties keep original corpus order.
//
// The cascade relaxes in three steps: the strict 50%-of-categories filter,
// then a fuzzy any-term-anywhere fallback, then a location-only fallback
// when locations were extracted. A query with no applicable categories
// passes every job through the strict filter (generic search).
func Rank(jobs []types.Job, criteria types.SearchCriteria) []types.RankedJob {
	filtered := filterStrict(jobs, criteria)

	if len(filtered) == 0 {
		filtered = filterFuzzy(jobs, criteria)
	}

	if len(filtered) == 0 && len(criteria.Locations) > 0 {
		filtered = filterByLocation(jobs, criteria.Locations)
	}

	ranked := make([]types.RankedJob, 0, len(filtered))
	for _, job := range filtered {
		ranked = append(ranked, types.RankedJob{
			Job:            job,
			RelevanceScore: relevanceScore(job, criteria),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})

	return ranked
}
