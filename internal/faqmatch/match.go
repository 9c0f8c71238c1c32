// Package faqmatch scores FAQ entries against user text by keyword and
// question-word overlap.
package faqmatch

import (
	"sort"
	"strings"

	"github.com/bhanuprakash-18/zeppy/internal/types"
)

// Score weights and the inclusion threshold. Multi-word keywords are more
// specific and outweigh single-word hits; question words contribute only a
// fraction so they cannot carry a match alone.
const (
	multiWordKeywordScore  = 5.0
	singleWordKeywordScore = 2.0
	questionWordScore      = 0.5
	minQuestionWordLength  = 3
	scoreThreshold         = 2.0 // strictly greater than
)

// Match returns the FAQs scoring above the threshold, most relevant first.
// Ties keep corpus order. An empty result is a normal outcome, not an error.
func Match(faqs []types.FAQ, text string) []types.FAQ {
	lower := strings.ToLower(text)

	type scored struct {
		faq   types.FAQ
		score float64
	}

	var matches []scored
	for _, faq := range faqs {
		score := scoreFAQ(faq, lower)
		if score > scoreThreshold {
			matches = append(matches, scored{faq: faq, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]types.FAQ, 0, len(matches))
	for _, match := range matches {
		result = append(result, match.faq)
	}
	return result
}

func scoreFAQ(faq types.FAQ, text string) float64 {
	score := 0.0

	for _, keyword := range faq.Keywords {
		lower := strings.ToLower(keyword)
		if !strings.Contains(text, lower) {
			continue
		}
		if len(strings.Fields(lower)) > 1 {
			score += multiWordKeywordScore
		} else {
			score += singleWordKeywordScore
		}
	}

	for _, word := range strings.Fields(strings.ToLower(faq.Question)) {
		if len(word) > minQuestionWordLength && strings.Contains(text, word) {
			score += questionWordScore
		}
	}

	return score
}
