// Package company maps keyword hits in user text to sections of the
// structured company handbook.
package company

import (
	"fmt"
	"strings"

	"github.com/bhanuprakash-18/zeppy/internal/types"
)

// topicWords trigger the resolver even when no handbook-level keyword is
// present in the text.
var topicWords = []string{"location", "office", "culture", "environment", "mission", "vision", "values"}

// locationWords select the locations section during dispatch.
var locationWords = []string{"location", "office", "where", "addresses", "branches", "sites"}

// Section is one resolved handbook block, ready for rendering.
type Section struct {
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs,omitempty"`
	Items      []string `json:"items,omitempty"`
}

// Resolve returns the handbook section matching the text, or nil when
// neither a handbook keyword nor a topic word occurs. Dispatch is a fixed
// priority order and the first match wins.
func Resolve(handbook types.Handbook, text string) *Section {
	lower := strings.ToLower(text)

	triggered := containsAny(lower, topicWords)
	if !triggered {
		for _, keyword := range handbook.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				triggered = true
				break
			}
		}
	}
	if !triggered {
		return nil
	}

	switch {
	case strings.Contains(lower, "mission"):
		return &Section{Heading: "Our Mission", Paragraphs: []string{handbook.Mission}}

	case strings.Contains(lower, "vision"):
		return &Section{Heading: "Our Vision", Paragraphs: []string{handbook.Vision}}

	case strings.Contains(lower, "values"):
		return &Section{Heading: "Our Values", Items: handbook.Values}

	case strings.Contains(lower, "culture") || strings.Contains(lower, "environment"):
		return &Section{
			Heading: fmt.Sprintf("Company Culture at %s", handbook.Name),
			Paragraphs: []string{
				"Work Environment: " + handbook.Culture.WorkEnvironment,
				"Team Spirit: " + handbook.Culture.TeamSpirit,
				"Growth Opportunities: " + handbook.Culture.GrowthOpportunities,
				"Work-Life Balance: " + handbook.Culture.WorkLifeBalance,
			},
		}

	case containsAny(lower, locationWords):
		items := make([]string, 0, len(handbook.Locations))
		for _, loc := range handbook.Locations {
			items = append(items, fmt.Sprintf("%s - %s: %s", loc.City, loc.Type, loc.Focus))
		}
		return &Section{Heading: "Our Locations", Items: items}

	default:
		return &Section{
			Heading: fmt.Sprintf("About %s", handbook.Name),
			Paragraphs: []string{
				handbook.Description,
				"Founded: " + handbook.Founded,
				"Headquarters: " + handbook.Headquarters,
				"Mission: " + handbook.Mission,
			},
		}
	}
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
