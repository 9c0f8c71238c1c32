package dialogue

import (
	"strings"

	"github.com/bhanuprakash-18/zeppy/internal/company"
	"github.com/bhanuprakash-18/zeppy/internal/criteria"
	"github.com/bhanuprakash-18/zeppy/internal/faqmatch"
	"github.com/bhanuprakash-18/zeppy/internal/ranking"
	"github.com/bhanuprakash-18/zeppy/internal/types"
)

// rule is one entry of the ordered intent cascade. Rules are evaluated top
// to bottom; the first rule whose predicate holds handles the turn and later
// rules never see the input. The ordering is a deliberate design choice
// (simplicity over accuracy) and must not be rearranged.
type rule struct {
	name    string
	applies func(a *Assistant, msg string) bool
	handle  func(a *Assistant, msg string) types.Response
}

func intentRules() []rule {
	return []rule{
		{
			name:    "simple-response",
			applies: func(_ *Assistant, msg string) bool { return isSimpleToken(msg) },
			handle:  (*Assistant).handleSimple,
		},
		{
			name: "application-question",
			applies: func(a *Assistant, msg string) bool {
				return isApplicationQuestion(msg) && len(faqmatch.Match(a.store.FAQs(), msg)) > 0
			},
			handle: func(a *Assistant, msg string) types.Response {
				matches := faqmatch.Match(a.store.FAQs(), msg)
				a.setTopic(types.TopicFAQ, matches[0].Question)
				return faqResponse(matches[0])
			},
		},
		{
			name: "contact",
			applies: func(_ *Assistant, msg string) bool {
				return strings.Contains(msg, "contact") ||
					strings.Contains(msg, "recruiting team") ||
					strings.Contains(msg, "get in touch")
			},
			handle: func(a *Assistant, _ string) types.Response {
				a.setTopic(types.TopicContact, "contact_info")
				return contactBlock()
			},
		},
		{
			name: "all-jobs",
			applies: func(_ *Assistant, msg string) bool {
				return msg == "show me available jobs" || msg == "show me all available jobs"
			},
			handle: func(a *Assistant, _ string) types.Response {
				a.setTopic(types.TopicJobs, "all_jobs")
				return a.respondWithJobs(allRanked(a.store.Jobs()))
			},
		},
		{
			name: "jobs-by-location",
			applies: func(_ *Assistant, msg string) bool {
				return msg == "jobs in other locations" ||
					msg == "what jobs are available in other locations?"
			},
			handle: func(a *Assistant, _ string) types.Response {
				a.setTopic(types.TopicJobs, "jobs_by_location")
				return a.JobsByLocation()
			},
		},
		{
			name: "job-search",
			applies: func(_ *Assistant, msg string) bool {
				return isJobSearchQuery(msg) && !isApplicationQuestion(msg)
			},
			handle: func(a *Assistant, msg string) types.Response {
				a.setTopic(types.TopicJobs, "job_search")
				ranked := ranking.Rank(a.store.Jobs(), criteria.Extract(msg))
				if len(ranked) == 0 {
					return a.respondNoJobs(msg)
				}
				return a.respondWithJobs(ranked)
			},
		},
		{
			name: "company-targeted",
			applies: func(a *Assistant, msg string) bool {
				return containsAny(msg, companyTopicWords) &&
					company.Resolve(a.store.Handbook(), msg) != nil
			},
			handle: func(a *Assistant, msg string) types.Response {
				a.setTopic(types.TopicCompany, "company_info")
				return companyResponse(company.Resolve(a.store.Handbook(), msg))
			},
		},
		{
			name: "faq-fallback",
			applies: func(a *Assistant, msg string) bool {
				return len(faqmatch.Match(a.store.FAQs(), msg)) > 0
			},
			handle: func(a *Assistant, msg string) types.Response {
				matches := faqmatch.Match(a.store.FAQs(), msg)
				a.setTopic(types.TopicFAQ, matches[0].Question)
				return faqResponse(matches[0])
			},
		},
		{
			name: "company-fallback",
			applies: func(a *Assistant, msg string) bool {
				return company.Resolve(a.store.Handbook(), msg) != nil
			},
			handle: func(a *Assistant, msg string) types.Response {
				a.setTopic(types.TopicCompany, "company_info")
				return companyResponse(company.Resolve(a.store.Handbook(), msg))
			},
		},
		{
			name:    "default",
			applies: func(_ *Assistant, _ string) bool { return true },
			handle:  func(_ *Assistant, _ string) types.Response { return fallbackMenu() },
		},
	}
}

var applicationKeywords = []string{
	"how to apply", "how can i apply", "how do i apply", "application process",
	"apply for", "applying for", "submit application", "send application",
	"application requirements", "what do i need", "documents required",
	"application documents", "how long", "response time", "feedback",
}

var jobSearchKeywords = []string{
	"jobs", "positions", "vacancies", "openings", "roles", "careers",
	"job in", "position in", "work in", "employment in",
	"engineer", "developer", "manager", "technician", "specialist",
	"berlin", "hamburg", "munich", "bremen", "stuttgart",
	"engineering", "production", "marketing", "hr", "testing",
}

var companyTopicWords = []string{
	"location", "office", "culture", "environment", "mission", "vision", "values",
}

// isApplicationQuestion distinguishes process questions from job searches so
// that "how to apply for engineer jobs" lands on the FAQ, not the ranker.
func isApplicationQuestion(msg string) bool {
	return containsAny(msg, applicationKeywords)
}

func isJobSearchQuery(msg string) bool {
	return containsAny(msg, jobSearchKeywords)
}

func containsAny(msg string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(msg, keyword) {
			return true
		}
	}
	return false
}

func allRanked(jobs []types.Job) []types.RankedJob {
	ranked := make([]types.RankedJob, 0, len(jobs))
	for _, job := range jobs {
		ranked = append(ranked, types.RankedJob{Job: job})
	}
	return ranked
}
