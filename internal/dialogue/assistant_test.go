package dialogue

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhanuprakash-18/zeppy/internal/corpus"
	"github.com/bhanuprakash-18/zeppy/internal/types"
)

// newTestAssistant loads the shipped corpus; the dialogue tests run against
// the real data the assistant ships with.
func newTestAssistant(t *testing.T) *Assistant {
	t.Helper()
	store, err := corpus.Load(context.Background(), filepath.Join("..", "..", "data"))
	require.NoError(t, err)
	return New(store)
}

func jobIDs(ranked []types.RankedJob) []int {
	ids := make([]int, len(ranked))
	for i, r := range ranked {
		ids[i] = r.Job.ID
	}
	return ids
}

func TestHandleTurn_VagueInputGetsClarification(t *testing.T) {
	a := newTestAssistant(t)

	resp := a.HandleTurn("hi")

	assert.Equal(t, types.KindMenu, resp.Kind)
	assert.Contains(t, resp.Paragraphs[0], "more specific")
	assert.Equal(t, types.TopicNone, a.State().LastTopic, "vague turns must not touch state")
}

func TestHandleTurn_ShortTokensAreVagueBeforeSimple(t *testing.T) {
	a := newTestAssistant(t)

	// "ok" and "no" are shorter than three characters, so the vague check
	// claims them before the simple-response handling ever runs.
	for _, msg := range []string{"ok", "no"} {
		resp := a.HandleTurn(msg)
		assert.Contains(t, resp.Paragraphs[0], "more specific", "input %q", msg)
	}
}

func TestHandleTurn_AffirmativeWithoutTopic(t *testing.T) {
	a := newTestAssistant(t)

	resp := a.HandleTurn("yes")

	assert.Equal(t, types.KindMenu, resp.Kind)
	require.Len(t, resp.Options, 4)
	assert.Equal(t, "Application Process", resp.Options[0].Label)
}

func TestHandleTurn_NegativeWithoutTopicSaysGoodbye(t *testing.T) {
	a := newTestAssistant(t)

	resp := a.HandleTurn("nope")

	assert.Equal(t, types.KindMessage, resp.Kind)
	assert.Empty(t, resp.Options)
	assert.Contains(t, resp.Paragraphs[0], "No worries")
}

func TestHandleTurn_ThanksWithoutTopic(t *testing.T) {
	a := newTestAssistant(t)

	resp := a.HandleTurn("thanks")

	assert.Equal(t, types.KindMenu, resp.Kind)
	assert.Contains(t, resp.Paragraphs[0], "You're very welcome!")
	require.Len(t, resp.Options, 3)
}

func TestHandleTurn_AffirmativeAfterJobSearchIsContextual(t *testing.T) {
	a := newTestAssistant(t)
	a.HandleTurn("software engineer jobs in berlin")
	require.Equal(t, types.TopicJobs, a.State().LastTopic)

	got := a.HandleTurn("yes")

	want := types.Menu(
		[]string{"Excellent! Let me show you more job opportunities or help you with the application process."},
		types.Option{Label: "Show More Jobs", Query: "show me more jobs"},
		types.Option{Label: "Application Process", Query: "application process"},
		types.Option{Label: "Contact Recruiting", Query: "contact recruiting team"},
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("contextual response mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleTurn_JobSearchRanksBerlinEngineers(t *testing.T) {
	a := newTestAssistant(t)

	resp := a.HandleTurn("software engineer jobs in berlin")

	assert.Equal(t, types.KindJobList, resp.Kind)
	require.Len(t, resp.Jobs, 2)
	// Exact title match outranks the senior variant.
	assert.Equal(t, []int{1, 2}, jobIDs(resp.Jobs))
	for _, ranked := range resp.Jobs {
		assert.Equal(t, "Berlin", ranked.Job.Location)
	}
	assert.Equal(t, types.TopicJobs, a.State().LastTopic)
}

func TestHandleTurn_MisspelledSearchStillMatches(t *testing.T) {
	a := newTestAssistant(t)

	resp := a.HandleTurn("berln enginer")

	assert.Equal(t, types.KindJobList, resp.Kind)
	require.NotEmpty(t, resp.Jobs)
	// Berlin jobs collect the exact-location bonus and lead the ranking.
	assert.Equal(t, "Berlin", resp.Jobs[0].Job.Location)
}

func TestHandleTurn_ApplicationQuestionBeatsJobSearch(t *testing.T) {
	a := newTestAssistant(t)

	// "how to apply for engineer jobs" contains job-search keywords too;
	// the application rule sits higher in the cascade.
	resp := a.HandleTurn("how to apply for engineer jobs")

	assert.Equal(t, types.KindFAQ, resp.Kind)
	require.NotNil(t, resp.FAQ)
	assert.Equal(t, "How do I apply for a position?", resp.FAQ.Question)
	assert.Equal(t, types.TopicFAQ, a.State().LastTopic)
}

func TestHandleTurn_ContactRequest(t *testing.T) {
	a := newTestAssistant(t)

	resp := a.HandleTurn("contact recruiting team")

	assert.Equal(t, types.KindMenu, resp.Kind)
	assert.Contains(t, resp.Paragraphs[1], "careers@zeppelin-power.com")
	assert.Equal(t, types.TopicContact, a.State().LastTopic)
}

func TestHandleTurn_TargetedCompanyQuestion(t *testing.T) {
	a := newTestAssistant(t)

	resp := a.HandleTurn("what is your mission")

	assert.Equal(t, types.KindMenu, resp.Kind)
	assert.Equal(t, "Our Mission:", resp.Paragraphs[0])
	assert.Equal(t, types.TopicCompany, a.State().LastTopic)
}

func TestHandleTurn_FAQFallback(t *testing.T) {
	a := newTestAssistant(t)

	resp := a.HandleTurn("how many vacation days do i get")

	assert.Equal(t, types.KindFAQ, resp.Kind)
	require.NotNil(t, resp.FAQ)
	assert.Equal(t, "How many vacation days do I have?", resp.FAQ.Question)
}

func TestHandleTurn_UnresolvableInputGetsDefaultMenu(t *testing.T) {
	a := newTestAssistant(t)

	resp := a.HandleTurn("qwerty asdfgh")

	assert.Equal(t, types.KindMenu, resp.Kind)
	assert.Contains(t, resp.Paragraphs[0], "not quite sure")
	require.Len(t, resp.Options, 5)
}

func TestHandleTurn_NoResultsArmsFollowUp(t *testing.T) {
	a := newTestAssistant(t)

	resp := a.HandleTurn("submarine pilot jobs in antarctica")

	assert.Equal(t, types.KindMenu, resp.Kind)
	assert.Contains(t, resp.Paragraphs[0], "No jobs found")
	assert.Contains(t, resp.Paragraphs, "We have positions in: Berlin, Hamburg, Munich, Stuttgart, Bremen")
	assert.Contains(t, resp.Paragraphs, "Available departments: Engineering, Production, Research, Human Resources, Marketing, Sales, Quality")
	require.Len(t, resp.Options, 3)
	assert.Equal(t, "View All Jobs", resp.Options[0].Label)
	assert.True(t, a.State().ExpectingFollowUp)
}

func TestHandleTurn_FollowUpFlagIsOneShot(t *testing.T) {
	a := newTestAssistant(t)
	a.HandleTurn("submarine pilot jobs in antarctica")
	require.True(t, a.State().ExpectingFollowUp)

	resp := a.HandleTurn("yes")

	// The flag is consumed and the turn falls through to the contextual
	// jobs branch.
	assert.False(t, a.State().ExpectingFollowUp)
	require.NotEmpty(t, resp.Options)
	assert.Equal(t, "Show More Jobs", resp.Options[0].Label)
}

func TestHandleTurn_AllJobsListsFirstPage(t *testing.T) {
	a := newTestAssistant(t)

	resp := a.HandleTurn("show me available jobs")

	assert.Equal(t, types.KindJobList, resp.Kind)
	assert.Equal(t, []int{1, 2, 3, 4}, jobIDs(resp.Jobs))
	assert.Equal(t, 8, resp.Remaining)
}

func TestHandleTurn_JobsByLocationGroups(t *testing.T) {
	a := newTestAssistant(t)

	resp := a.HandleTurn("jobs in other locations")

	assert.Equal(t, types.KindMessage, resp.Kind)
	assert.Contains(t, resp.Paragraphs, "Berlin (3 positions):")
	assert.Contains(t, resp.Paragraphs, "Hamburg (3 positions):")
	assert.True(t, a.State().ExpectingFollowUp)
}

func TestHandleOption_SetsTopicAndReturnsSubmenu(t *testing.T) {
	a := newTestAssistant(t)

	resp := a.HandleOption(types.TopicBenefits)

	assert.Equal(t, types.KindMenu, resp.Kind)
	require.Len(t, resp.Options, 5)
	assert.Equal(t, "How many vacation days do I have?", resp.Options[0].Label)
	assert.Equal(t, types.TopicBenefits, a.State().LastTopic)
	assert.False(t, a.State().ExpectingFollowUp)
}

func TestHandleOption_SubmenuQueriesResolve(t *testing.T) {
	a := newTestAssistant(t)

	// Every quick-option query must land on a real answer, not the
	// default menu.
	queries := []string{
		"What do I need to submit?",
		"How does the process work?",
		"Can I send an unsolicited application?",
		"Where can I find the requirements?",
		"I don't meet all requirements - should I apply anyway?",
		"What are the working hours like?",
		"Do you work from home?",
		"How many vacation days do I have?",
		"Is there a job ticket?",
		"What is Z FIT?",
		"What does Z COLOURFUL mean?",
		"What do you do for sustainability?",
		"What further training opportunities are there?",
		"Are there internal training courses?",
		"How safe is my job?",
	}
	for _, query := range queries {
		resp := a.HandleTurn(query)
		assert.Equalf(t, types.KindFAQ, resp.Kind, "query %q fell through", query)
	}
}

func TestReset_ClearsStateAndReturnsWelcome(t *testing.T) {
	a := newTestAssistant(t)
	a.HandleTurn("software engineer jobs in berlin")
	require.Equal(t, types.TopicJobs, a.State().LastTopic)

	resp := a.Reset()

	assert.Equal(t, types.TopicNone, a.State().LastTopic)
	assert.Equal(t, types.KindMenu, resp.Kind)
	require.Len(t, resp.Options, 6)
	assert.Equal(t, "Application & documents", resp.Options[0].Label)
}

func TestJobDetail_CarriesOfferStepsAndPortalLink(t *testing.T) {
	a := newTestAssistant(t)

	resp, err := a.JobDetail(3)
	require.NoError(t, err)

	assert.Equal(t, types.KindJobDetail, resp.Kind)
	require.NotNil(t, resp.Detail)
	assert.Equal(t, "Electrical Engineer", resp.Detail.Job.Title)
	assert.Len(t, resp.Detail.Offer, 8)
	assert.Len(t, resp.Detail.ProcessSteps, 4)
	assert.Equal(t, "https://careers.zeppelin-power.com/apply?job=Electrical+Engineer&id=3", resp.Detail.PortalURL)
}

func TestJobDetail_StaleIDFailsGracefully(t *testing.T) {
	a := newTestAssistant(t)

	_, err := a.JobDetail(999)

	var notFound *corpus.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 999, notFound.JobID)
}

func TestApplyLink_EscapesTitle(t *testing.T) {
	a := newTestAssistant(t)

	link, err := a.ApplyLink(1)
	require.NoError(t, err)
	assert.Equal(t, "https://careers.zeppelin-power.com/apply?job=Software+Engineer&id=1", link)
}

func TestAssistant_NilStoreStaysInert(t *testing.T) {
	a := New(nil)

	resp := a.HandleTurn("show me available jobs")
	assert.Contains(t, resp.Paragraphs[0], "trouble accessing my knowledge base")

	resp, ok := a.MoreJobs()
	assert.False(t, ok)
	assert.Contains(t, resp.Paragraphs[0], "trouble accessing my knowledge base")

	resp = a.HandleOption(types.TopicJobs)
	assert.Contains(t, resp.Paragraphs[0], "trouble accessing my knowledge base")
}

func TestSessionID_StablePerAssistant(t *testing.T) {
	a := newTestAssistant(t)
	b := newTestAssistant(t)

	assert.Equal(t, a.SessionID(), a.SessionID())
	assert.NotEqual(t, a.SessionID(), b.SessionID())
}
