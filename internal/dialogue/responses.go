package dialogue

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bhanuprakash-18/zeppy/internal/company"
	"github.com/bhanuprakash-18/zeppy/internal/corpus"
	"github.com/bhanuprakash-18/zeppy/internal/types"
)

// applicationPortalBase is the hand-off target for "apply" actions. The
// redirect itself is the presentation layer's job; the core only builds the
// link.
const applicationPortalBase = "https://careers.zeppelin-power.com/apply"

func corpusUnavailable() types.Response {
	return types.Message("Sorry, I'm having trouble accessing my knowledge base. Please try again in a moment.")
}

func clarificationMenu() types.Response {
	return types.Menu(
		[]string{
			"I'd be happy to help! Could you please be more specific about what you'd like to know?",
			"You can ask me about:",
			"• Application process and requirements",
			"• Job opportunities and positions",
			"• Company information and culture",
			"• Benefits and working conditions",
			"• Training and development opportunities",
		},
		types.Option{Label: "Apply now", Query: "show me available jobs"},
		types.Option{Label: "Ask more questions", Query: "main menu"},
		types.Option{Label: "Get in touch", Query: "contact recruiting team"},
	)
}

func fallbackMenu() types.Response {
	return types.Menu(
		[]string{
			"Hmm, I'm not quite sure about that one! But no worries - I'm Zeppy, and I'm here to help you find exactly what you need!",
			"Or feel free to rephrase your question - I love helping people find their perfect career path!",
		},
		types.Option{Label: "Application & documents", Query: "application process"},
		types.Option{Label: "Job advertisements & requirements", Query: "show me available jobs"},
		types.Option{Label: "Company & working time models", Query: "company information"},
		types.Option{Label: "Benefits & corporate culture", Query: "benefits and culture"},
		types.Option{Label: "Contact recruiting team", Query: "contact recruiting team"},
	)
}

func welcomeMenu() types.Response {
	return types.Menu(
		[]string{"Hello and welcome back! What are you interested in right now?"},
		types.Option{Label: "Application & documents", Query: "application process"},
		types.Option{Label: "Job advertisements & requirements", Query: "show me available jobs"},
		types.Option{Label: "Company & working time models", Query: "company information"},
		types.Option{Label: "Career & development", Query: "career and development"},
		types.Option{Label: "Benefits & corporate culture", Query: "benefits and culture"},
		types.Option{Label: "Ask something else", Query: "ask something else"},
	)
}

func contactBlock() types.Response {
	return types.Menu(
		[]string{
			"You can contact our recruiting team in several ways:",
			"• Email: careers@zeppelin-power.com",
			"• Phone: +49 40 123-4567 (Hamburg HQ)",
			"• Application Portal: visit our website's career section",
			"• LinkedIn: follow us @ZeppelinPowerSystems",
			"Our recruiting team is available Monday-Friday, 9:00 AM - 5:00 PM CET.",
			"Would you like to apply for a position, or do you have more questions?",
		},
		types.Option{Label: "Apply for positions", Query: "show me available jobs"},
		types.Option{Label: "Application questions", Query: "application process"},
		types.Option{Label: "Company information", Query: "company information"},
		types.Option{Label: "Back to main menu", Query: "main menu"},
	)
}

func faqResponse(faq types.FAQ) types.Response {
	return types.Response{
		Kind:       types.KindFAQ,
		FAQ:        &faq,
		Paragraphs: []string{"I hope I was able to help you! Would you like to:"},
		Options: []types.Option{
			{Label: "Ask about applications", Query: "application process"},
			{Label: "See available jobs", Query: "show me available jobs"},
			{Label: "Get in touch with recruiting", Query: "contact recruiting team"},
			{Label: "Back to main menu", Query: "main menu"},
		},
	}
}

func companyResponse(section *company.Section) types.Response {
	paragraphs := []string{section.Heading + ":"}
	paragraphs = append(paragraphs, section.Paragraphs...)
	for _, item := range section.Items {
		paragraphs = append(paragraphs, "• "+item)
	}
	paragraphs = append(paragraphs, "Would you like to know more about our company, or are you interested in exploring opportunities?")
	return types.Menu(paragraphs,
		types.Option{Label: "More company info", Query: "company information"},
		types.Option{Label: "See available jobs", Query: "show me available jobs"},
		types.Option{Label: "Benefits & culture", Query: "benefits and culture"},
		types.Option{Label: "Back to main menu", Query: "main menu"},
	)
}

// respondWithJobs resets the pagination cursor to the new result set and
// renders the first page. A single result becomes one detailed card.
func (a *Assistant) respondWithJobs(ranked []types.RankedJob) types.Response {
	a.cursor.reset(ranked)

	followUps := []types.Option{
		{Label: "Learn about applying", Query: "application process"},
		{Label: "Search more jobs", Query: "show me available jobs"},
		{Label: "Contact recruiting", Query: "contact recruiting team"},
		{Label: "Back to main menu", Query: "main menu"},
	}

	if len(ranked) == 1 {
		return types.Response{
			Kind: types.KindJobList,
			Paragraphs: []string{
				"Great news! I found 1 position that matches what you're looking for:",
				"Would you like me to tell you more about the application process or show you similar positions?",
			},
			Jobs:    ranked,
			Options: followUps,
		}
	}

	visible := ranked
	if len(visible) > pageSize {
		visible = visible[:pageSize]
	}

	return types.Response{
		Kind: types.KindJobList,
		Paragraphs: []string{
			fmt.Sprintf("Fantastic! I found %d positions that match what you're looking for:", len(ranked)),
			"Do any of these catch your eye? I'd love to help you learn more about them or guide you through the application process!",
		},
		Jobs:      visible,
		Remaining: len(ranked) - len(visible),
		Options:   followUps,
	}
}

// respondNoJobs renders the no-results block: what was searched for, the
// shortcuts to broaden it, and the locations and departments that actually
// exist. It arms the one-shot follow-up flag.
func (a *Assistant) respondNoJobs(msg string) types.Response {
	a.state.ExpectingFollowUp = true

	paragraphs := []string{"No jobs found matching your search. Try checking your spelling or broadening your criteria."}

	locations, roles := extractSearchTerms(msg)
	if len(locations) > 0 || len(roles) > 0 {
		searched := "I searched for"
		if len(roles) > 0 {
			searched += " " + strings.Join(roles, ", ")
		}
		if len(locations) > 0 {
			searched += " in " + strings.Join(locations, ", ")
		}
		paragraphs = append(paragraphs, searched+" but couldn't find exact matches.")
	}

	paragraphs = append(paragraphs,
		"Here are some suggestions to help you find opportunities:",
		"We have positions in: "+strings.Join(a.store.Locations(), ", "),
		"Available departments: "+strings.Join(a.store.Departments(), ", "),
		"Try searching with different keywords or ask me about specific roles!",
	)

	return types.Menu(paragraphs,
		types.Option{Label: "View All Jobs", Query: "show me all available jobs"},
		types.Option{Label: "Different Locations", Query: "jobs in other locations"},
		types.Option{Label: "Similar Positions", Query: "similar positions"},
	)
}

// JobsByLocation renders the whole corpus grouped by location and arms the
// follow-up flag so a short reply continues the job conversation.
func (a *Assistant) JobsByLocation() types.Response {
	if a.store == nil {
		return corpusUnavailable()
	}

	byLocation := make(map[string][]types.Job)
	for _, job := range a.store.Jobs() {
		byLocation[job.Location] = append(byLocation[job.Location], job)
	}

	paragraphs := []string{"Here are our available positions by location:"}
	for _, location := range a.store.Locations() {
		jobs := byLocation[location]
		paragraphs = append(paragraphs, fmt.Sprintf("%s (%d positions):", location, len(jobs)))
		for _, job := range jobs {
			paragraphs = append(paragraphs, fmt.Sprintf("• %s - %s", job.Title, job.Type))
		}
	}
	paragraphs = append(paragraphs, "Would you like more details about any specific position or location?")

	a.state.ExpectingFollowUp = true
	return types.Message(paragraphs...)
}

// jobOffer is the fixed benefits list shown on every job detail view.
var jobOffer = []string{
	"30 days paid vacation",
	"Flexible working hours with flexitime",
	"Mobile and remote work options",
	"Capital-forming benefits and company pension",
	"Z FIT wellness program with company bikes",
	"Z COLOURFUL diversity and inclusion initiatives",
	"Extensive training and development opportunities",
	"Permanent employment contract",
}

var applicationSteps = []string{
	"Required documents: CV/resume (mandatory), cover letter and references (optional)",
	"Apply online via our application portal",
	"You will receive initial feedback within 7 days",
	"Initial interview followed by further steps depending on the position",
}

// JobDetail returns the popup-worthy payload for one job card. A stale id
// yields the corpus NotFoundError; callers treat that as a guarded no-op.
func (a *Assistant) JobDetail(id int) (types.Response, error) {
	if a.store == nil {
		return corpusUnavailable(), nil
	}
	job, err := a.store.JobByID(id)
	if err != nil {
		return types.Response{}, err
	}
	return types.Response{
		Kind: types.KindJobDetail,
		Detail: &types.JobDetail{
			Job:          *job,
			Offer:        jobOffer,
			ProcessSteps: applicationSteps,
			PortalURL:    applyLink(*job),
		},
	}, nil
}

// ApplyLink returns the application-portal URL for a job. The portal
// hand-off is a stub: nothing is submitted from here.
func (a *Assistant) ApplyLink(id int) (string, error) {
	if a.store == nil {
		return "", &corpus.NotFoundError{JobID: id}
	}
	job, err := a.store.JobByID(id)
	if err != nil {
		return "", err
	}
	return applyLink(*job), nil
}

func applyLink(job types.Job) string {
	return fmt.Sprintf("%s?job=%s&id=%d", applicationPortalBase, url.QueryEscape(job.Title), job.ID)
}

// optionMenu answers the top-level quick-option topics with their canned
// submenus.
func optionMenu(topic types.Topic) types.Response {
	switch topic {
	case types.TopicApplication:
		return types.Menu(
			[]string{"You want to know more about the application - what exactly is it about?"},
			types.Option{Label: "What do I need to submit?", Query: "What do I need to submit?"},
			types.Option{Label: "How does the process work?", Query: "How does the process work?"},
			types.Option{Label: "Can I send an unsolicited application?", Query: "Can I send an unsolicited application?"},
			types.Option{Label: "Can I change my application?", Query: "Can I change my application?"},
		)
	case types.TopicJobs:
		return types.Menu(
			[]string{"Are you interested in a specific position?"},
			types.Option{Label: "Where can I find the requirements?", Query: "Where can I find the requirements?"},
			types.Option{Label: "I don't meet all requirements - should I apply anyway?", Query: "I don't meet all requirements - should I apply anyway?"},
			types.Option{Label: "Is the position suitable for young professionals?", Query: "Is the position suitable for young professionals?"},
			types.Option{Label: "Show me available jobs", Query: "show me available jobs"},
		)
	case types.TopicCompany:
		return types.Menu(
			[]string{"What would you like to know about Zeppelin Power Systems?"},
			types.Option{Label: "What exactly do you do?", Query: "What exactly do you do?"},
			types.Option{Label: "What are the working hours like?", Query: "What are the working hours like?"},
			types.Option{Label: "Do you work from home?", Query: "Do you work from home?"},
			types.Option{Label: "Office locations", Query: "company locations"},
		)
	case types.TopicCareer:
		return types.Menu(
			[]string{"You want to develop yourself further - here are our offers:"},
			types.Option{Label: "What further training opportunities are there?", Query: "What further training opportunities are there?"},
			types.Option{Label: "Are there internal training courses?", Query: "Are there internal training courses?"},
			types.Option{Label: "How safe is my job?", Query: "How safe is my job?"},
		)
	case types.TopicBenefits:
		return types.Menu(
			[]string{"Our benefits and values - what interests you?"},
			types.Option{Label: "How many vacation days do I have?", Query: "How many vacation days do I have?"},
			types.Option{Label: "Is there a job ticket?", Query: "Is there a job ticket?"},
			types.Option{Label: "What is Z FIT?", Query: "What is Z FIT?"},
			types.Option{Label: "What does Z COLOURFUL mean?", Query: "What does Z COLOURFUL mean?"},
			types.Option{Label: "What do you do for sustainability?", Query: "What do you do for sustainability?"},
		)
	default:
		return types.Message("Feel free to ask me your question - I'll try to help or pass you on. If I can't answer, you can always contact our recruiting team.")
	}
}

// Coarse echo tables for the no-results message. These are intentionally
// separate from the extractor's synonym tables: they only describe what the
// user asked for, they never drive matching.
var echoLocationTerms = []struct {
	label    string
	surfaces []string
}{
	{"Berlin", []string{"berlin", "berlín"}},
	{"Hamburg", []string{"hamburg", "hambourg"}},
	{"Munich", []string{"munich", "münchen", "muenchen"}},
	{"Stuttgart", []string{"stuttgart"}},
	{"Bremen", []string{"bremen"}},
	{"Frankfurt", []string{"frankfurt"}},
	{"Cologne", []string{"cologne", "köln", "koeln"}},
	{"Düsseldorf", []string{"düsseldorf", "dusseldorf", "duesseldorf"}},
}

var echoRoleTerms = []struct {
	label    string
	surfaces []string
}{
	{"Engineer", []string{"engineer", "engineering", "technical", "dev", "developer"}},
	{"Software", []string{"software", "programming", "coding", "development"}},
	{"Manager", []string{"manager", "management", "lead"}},
	{"Technician", []string{"technician", "tech"}},
	{"Specialist", []string{"specialist", "expert"}},
	{"HR", []string{"hr", "human resources", "people"}},
	{"Marketing", []string{"marketing", "promotion"}},
	{"Flight", []string{"flight", "aviation", "aerospace"}},
}

func extractSearchTerms(msg string) (locations, roles []string) {
	for _, entry := range echoLocationTerms {
		for _, surface := range entry.surfaces {
			if strings.Contains(msg, surface) {
				locations = append(locations, entry.label)
				break
			}
		}
	}
	for _, entry := range echoRoleTerms {
		for _, surface := range entry.surfaces {
			if strings.Contains(msg, surface) {
				roles = append(roles, entry.label)
				break
			}
		}
	}
	return locations, roles
}
