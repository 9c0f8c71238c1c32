package types

// ResponseKind discriminates the renderable response variants.
type ResponseKind string

// Response variants the presentation layer knows how to render.
const (
	KindMessage   ResponseKind = "message"    // plain paragraphs
	KindMenu      ResponseKind = "menu"       // paragraphs plus an options menu
	KindJobList   ResponseKind = "job_list"   // job cards, optionally with a "view more" affordance
	KindFAQ       ResponseKind = "faq"        // one FAQ block plus follow-up options
	KindJobDetail ResponseKind = "job_detail" // popup-worthy full job payload
)

// Option is one entry of a quick-options menu. Query is the text the
// presentation layer feeds back into HandleTurn when the option is chosen.
type Option struct {
	Label string `json:"label"`
	Query string `json:"query"`
}

// Response is the render-agnostic result of one turn. Exactly the fields
// implied by Kind are populated; everything else is zero.
type Response struct {
	Kind       ResponseKind `json:"kind"`
	Paragraphs []string     `json:"paragraphs,omitempty"`
	Options    []Option     `json:"options,omitempty"`
	Jobs       []RankedJob  `json:"jobs,omitempty"`
	// Remaining is the number of jobs still held by the pagination cursor
	// after the Jobs slice, i.e. the "view N more" affordance.
	Remaining int        `json:"remaining,omitempty"`
	FAQ       *FAQ       `json:"faq,omitempty"`
	Detail    *JobDetail `json:"detail,omitempty"`
}

// JobDetail is the full payload behind a job card's "view details" action.
type JobDetail struct {
	Job          Job      `json:"job"`
	Offer        []string `json:"offer"`
	ProcessSteps []string `json:"process_steps"`
	PortalURL    string   `json:"portal_url"`
}

// Message builds a plain-text response from paragraphs.
func Message(paragraphs ...string) Response {
	return Response{Kind: KindMessage, Paragraphs: paragraphs}
}

// Menu builds a response carrying paragraphs and a quick-options menu.
func Menu(paragraphs []string, options ...Option) Response {
	return Response{Kind: KindMenu, Paragraphs: paragraphs, Options: options}
}
