package dialogue

import (
	"strings"

	"github.com/bhanuprakash-18/zeppy/internal/types"
)

// Simple yes/no/thanks turns. With a topic on record they branch into
// topic-specific contextual replies; without one, affirmatives open the main
// categories, negatives get a farewell and thanks an acknowledgment.

var positiveTokens = map[string]bool{
	"yes": true, "yeah": true, "yep": true, "sure": true, "ok": true, "okay": true,
}

var negativeTokens = map[string]bool{
	"no": true, "nope": true,
}

var thanksTokens = map[string]bool{
	"thanks": true, "thank you": true,
}

func isSimpleToken(msg string) bool {
	msg = strings.TrimSpace(msg)
	return positiveTokens[msg] || negativeTokens[msg] || thanksTokens[msg]
}

func (a *Assistant) handleSimple(msg string) types.Response {
	msg = strings.TrimSpace(msg)

	if a.state.LastTopic != types.TopicNone {
		return a.handleContextual(msg)
	}

	switch {
	case positiveTokens[msg]:
		return types.Menu(
			[]string{"Great! I'm happy to help you explore opportunities at Zeppelin Power Systems. What would you like to know about?"},
			types.Option{Label: "Application Process", Query: "application process"},
			types.Option{Label: "Available Jobs", Query: "show me available jobs"},
			types.Option{Label: "Company Information", Query: "company information"},
			types.Option{Label: "Benefits & Culture", Query: "benefits and culture"},
		)
	case negativeTokens[msg]:
		return types.Message(
			"No worries at all! If you change your mind or have any questions about Zeppelin Power Systems, I'm here for you.",
			"Feel free to ask me anything about jobs, applications, company culture, or benefits.",
		)
	default: // thanks
		return types.Menu(
			[]string{"You're very welcome! Is there anything else I can do for you today?"},
			types.Option{Label: "Browse Jobs", Query: "show me available jobs"},
			types.Option{Label: "Contact Us", Query: "contact recruiting team"},
			types.Option{Label: "Main Menu", Query: "main menu"},
		)
	}
}

func (a *Assistant) handleContextual(msg string) types.Response {
	positive := positiveTokens[msg]
	negative := negativeTokens[msg]

	switch a.state.LastTopic {
	case types.TopicJobs:
		if positive {
			return types.Menu(
				[]string{"Excellent! Let me show you more job opportunities or help you with the application process."},
				types.Option{Label: "Show More Jobs", Query: "show me more jobs"},
				types.Option{Label: "Application Process", Query: "application process"},
				types.Option{Label: "Contact Recruiting", Query: "contact recruiting team"},
			)
		}
		if negative {
			return types.Menu(
				[]string{"No problem! Let me help you with something else."},
				types.Option{Label: "Learn About Company", Query: "company information"},
				types.Option{Label: "Benefits & Culture", Query: "benefits and culture"},
				types.Option{Label: "Main Menu", Query: "main menu"},
			)
		}

	case types.TopicCompany:
		if positive {
			return types.Menu(
				[]string{"Great! What aspect of our company would you like to explore?"},
				types.Option{Label: "Company Culture", Query: "company culture"},
				types.Option{Label: "Diversity (Z COLOURFUL)", Query: "What does Z COLOURFUL mean?"},
				types.Option{Label: "Wellness (Z FIT)", Query: "What is Z FIT?"},
				types.Option{Label: "See Job Opportunities", Query: "show me available jobs"},
			)
		}
		if negative {
			return types.Menu(
				[]string{"That's fine! Would you like to explore job opportunities instead?"},
				types.Option{Label: "Browse Jobs", Query: "show me available jobs"},
				types.Option{Label: "Benefits & Salary", Query: "benefits and culture"},
				types.Option{Label: "Main Menu", Query: "main menu"},
			)
		}

	case types.TopicContact:
		if positive {
			return types.Menu(
				[]string{"Perfect! What would you like help with?"},
				types.Option{Label: "Application & documents", Query: "application process"},
				types.Option{Label: "Browse current jobs", Query: "show me available jobs"},
				types.Option{Label: "Unsolicited application", Query: "Can I send an unsolicited application?"},
			)
		}
		if negative {
			return types.Menu(
				[]string{"Alright! I'm here if you need any information. What can I help you with?"},
				types.Option{Label: "Job advertisements & requirements", Query: "show me available jobs"},
				types.Option{Label: "Company & working time models", Query: "company information"},
				types.Option{Label: "Main menu", Query: "main menu"},
			)
		}
	}

	// Generic contextual branch for every other recorded topic.
	if positive {
		return types.Menu(
			[]string{"Great! Let me help you further. What would you like to know more about?"},
			types.Option{Label: "Job advertisements & requirements", Query: "show me available jobs"},
			types.Option{Label: "Application Process", Query: "application process"},
			types.Option{Label: "Benefits & Culture", Query: "benefits and culture"},
		)
	}
	if negative {
		return types.Menu(
			[]string{"No problem! Is there something else I can help you with?"},
			types.Option{Label: "Back to Main Menu", Query: "main menu"},
			types.Option{Label: "Contact Us", Query: "contact recruiting team"},
		)
	}
	// Thanks with a topic on record gets the generic acknowledgment.
	return types.Menu(
		[]string{"You're very welcome! Is there anything else I can do for you today?"},
		types.Option{Label: "Browse Jobs", Query: "show me available jobs"},
		types.Option{Label: "Contact Us", Query: "contact recruiting team"},
		types.Option{Label: "Main Menu", Query: "main menu"},
	)
}
