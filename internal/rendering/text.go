// Package rendering flattens the rich-text fragments carried by FAQ answers
// into plain paragraphs for terminal output.
package rendering

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Flatten converts a simple HTML fragment (<p>, <ul>/<li>, <strong>, <br>)
// into plain-text paragraphs. List items become "• " lines. Input without
// markup comes back as a single paragraph. A parse failure falls back to the
// raw text rather than erroring: answers are display data, not control flow.
func Flatten(fragment string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		trimmed := strings.TrimSpace(fragment)
		if trimmed == "" {
			return nil
		}
		return []string{trimmed}
	}

	var paragraphs []string
	add := func(text string) {
		text = collapseWhitespace(text)
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	}

	blocks := doc.Find("body").ChildrenFiltered("p, ul, ol")
	if blocks.Length() == 0 {
		add(doc.Find("body").Text())
		return paragraphs
	}

	blocks.Each(func(_ int, block *goquery.Selection) {
		if block.Is("ul") || block.Is("ol") {
			block.Find("li").Each(func(_ int, item *goquery.Selection) {
				add("• " + item.Text())
			})
			return
		}
		add(block.Text())
	})

	return paragraphs
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
