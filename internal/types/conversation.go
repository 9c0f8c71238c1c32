package types

// Topic is the coarse label tracked across turns so that short follow-up
// replies ("yes", "no") can be answered in context.
type Topic string

// Topic values cover the resolver outcomes plus the quick-option menu labels.
const (
	TopicNone        Topic = ""
	TopicJobs        Topic = "jobs"
	TopicFAQ         Topic = "faq"
	TopicCompany     Topic = "company"
	TopicContact     Topic = "contact"
	TopicApplication Topic = "application"
	TopicCareer      Topic = "career"
	TopicBenefits    Topic = "benefits"
	TopicOther       Topic = "other"
)

// ConversationState is the single-slot conversation memory. It is mutated
// only by the dialogue controller, one turn at a time, and never persisted
// across sessions.
type ConversationState struct {
	LastTopic         Topic             `json:"last_topic"`
	LastQuestion      string            `json:"last_question"`
	ExpectingFollowUp bool              `json:"expecting_follow_up"`
	Context           map[string]string `json:"context"`
}

// NewConversationState returns the initial per-session state.
func NewConversationState() ConversationState {
	return ConversationState{
		LastTopic: TopicNone,
		Context:   make(map[string]string),
	}
}
