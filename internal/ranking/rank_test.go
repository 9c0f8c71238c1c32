package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhanuprakash-18/zeppy/internal/types"
)

func fixtureJobs() []types.Job {
	return []types.Job{
		{
			ID: 1, Title: "Software Engineer", Department: "Engineering",
			Location: "Berlin", Type: "Full-time",
			Description:  "Build software services with the platform team.",
			Requirements: []string{"python"},
		},
		{
			ID: 2, Title: "Senior Software Engineer", Department: "Engineering",
			Location: "Berlin", Type: "Full-time",
			Description:  "Lead the software team.",
			Requirements: []string{"java"},
		},
		{
			ID: 3, Title: "Electrical Engineer", Department: "Production",
			Location: "Hamburg", Type: "Full-time",
			Description:  "Commission switchgear for the plant team.",
			Requirements: []string{"switchgear"},
		},
		{
			ID: 4, Title: "Data Scientist", Department: "Research",
			Location: "Berlin", Type: "Full-time",
			Description:  "Analyse telemetry with the data team.",
			Requirements: []string{"statistics"},
		},
	}
}

func titles(ranked []types.RankedJob) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Job.Title
	}
	return out
}

func TestRank_EmptyCriteriaPassesEverythingInCorpusOrder(t *testing.T) {
	ranked := Rank(fixtureJobs(), types.SearchCriteria{})

	require.Len(t, ranked, 4)
	assert.Equal(t, []string{
		"Software Engineer", "Senior Software Engineer", "Electrical Engineer", "Data Scientist",
	}, titles(ranked))
	for _, r := range ranked {
		assert.Zero(t, r.RelevanceScore)
	}
}

func TestRank_StrictFilterRequiresHalfTheCategories(t *testing.T) {
	criteria := types.SearchCriteria{
		JobTitles: []string{"astronaut"},
		Locations: []string{"berlin"},
	}

	ranked := Rank(fixtureJobs(), criteria)

	// One of two categories matches for the Berlin jobs (exactly 50%),
	// zero for the Hamburg job.
	require.Len(t, ranked, 3)
	for _, r := range ranked {
		assert.Equal(t, "Berlin", r.Job.Location)
	}
}

func TestRank_ExactTitleOutranksSubstringMatch(t *testing.T) {
	criteria := types.SearchCriteria{
		JobTitles:   []string{"software engineer"},
		Locations:   []string{"berlin"},
		Departments: []string{"engineering"},
		Keywords:    []string{"software", "engineer", "berlin"},
	}

	ranked := Rank(fixtureJobs(), criteria)

	require.Len(t, ranked, 2)
	assert.Equal(t, []string{"Software Engineer", "Senior Software Engineer"}, titles(ranked))
	assert.Greater(t, ranked[0].RelevanceScore, ranked[1].RelevanceScore)
}

func TestRank_ScoreArithmetic(t *testing.T) {
	job := types.Job{
		ID: 1, Title: "Software Engineer", Department: "Engineering",
		Location: "Berlin", Type: "Full-time",
		Description:  "python services",
		Requirements: []string{"python"},
	}
	criteria := types.SearchCriteria{
		JobTitles:   []string{"software engineer"},
		Skills:      []string{"python"},
		Locations:   []string{"berlin"},
		Departments: []string{"engineering"},
		JobTypes:    []string{"full-time"},
		Keywords:    []string{"python"},
	}

	ranked := Rank([]types.Job{job}, criteria)

	require.Len(t, ranked, 1)
	// 100 title + 50 location + 30 department + 25 skill + 20 type
	// + 2 keyword occurrences * 5.
	assert.Equal(t, 235.0, ranked[0].RelevanceScore)
}

func TestRank_KeywordScoreCountsOccurrences(t *testing.T) {
	job := types.Job{ID: 1, Title: "Turbine Fitter", Location: "Bremen",
		Description: "Fit the turbine, test the turbine, ship the turbine."}

	ranked := Rank([]types.Job{job}, types.SearchCriteria{Keywords: []string{"turbine"}})

	require.Len(t, ranked, 1)
	// Four occurrences across title and description.
	assert.Equal(t, 20.0, ranked[0].RelevanceScore)
}

func TestRank_TiesKeepCorpusOrder(t *testing.T) {
	criteria := types.SearchCriteria{Keywords: []string{"team"}}

	ranked := Rank(fixtureJobs(), criteria)

	require.Len(t, ranked, 4)
	// Every fixture description mentions "team" exactly once, so all
	// scores tie and corpus order is preserved.
	assert.Equal(t, []string{
		"Software Engineer", "Senior Software Engineer", "Electrical Engineer", "Data Scientist",
	}, titles(ranked))
}

func TestRank_FuzzyFallbackMatchesDepartmentText(t *testing.T) {
	jobs := []types.Job{
		{ID: 1, Title: "Auditor", Department: "Quality", Location: "Hamburg",
			Description: "Check incoming parts."},
		{ID: 2, Title: "Cook", Department: "Canteen", Location: "Hamburg",
			Description: "Run the kitchen."},
	}
	criteria := types.SearchCriteria{
		JobTitles: []string{"astronaut"},
		Locations: []string{"frankfurt"},
		Keywords:  []string{"quality"},
	}

	// Strict matching sees "quality" only in title, description and
	// requirements, so no job reaches the 50% threshold. The fuzzy pass
	// also searches the department and rescues the auditor.
	ranked := Rank(jobs, criteria)

	require.Len(t, ranked, 1)
	assert.Equal(t, "Auditor", ranked[0].Job.Title)
}

func TestRank_LocationPhraseOverlapRescuesJobs(t *testing.T) {
	ranked := Rank(fixtureJobs(), types.SearchCriteria{Locations: []string{"hamburg area"}})

	require.Len(t, ranked, 1)
	assert.Equal(t, "Electrical Engineer", ranked[0].Job.Title)
}

func TestRank_NoMatchAnywhereReturnsNothing(t *testing.T) {
	criteria := types.SearchCriteria{
		JobTitles: []string{"submarine pilot"},
		Locations: []string{"atlantis"},
		Keywords:  []string{"submarine", "pilot"},
	}

	assert.Empty(t, Rank(fixtureJobs(), criteria))
}

func TestFilterByLocation_OverlapEitherDirection(t *testing.T) {
	jobs := fixtureJobs()

	assert.Len(t, filterByLocation(jobs, []string{"berlin area"}), 3)
	assert.Len(t, filterByLocation(jobs, []string{"ham"}), 1)
	assert.Empty(t, filterByLocation(jobs, []string{"vienna"}))
}
