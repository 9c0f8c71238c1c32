// Package normalize lower-cases user input and corrects a fixed table of
// known misspellings before any matching runs.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

// corrections maps known misspellings to their canonical forms. No corrected
// form is itself a key, so a single replacement pass is a fixed point.
var corrections = []struct {
	misspelling string
	corrected   string
}{
	// Job titles
	{"sofware", "software"},
	{"enginer", "engineer"},
	{"engeneer", "engineer"},
	{"enginere", "engineer"},
	{"devloper", "developer"},
	{"develper", "developer"},
	{"maneger", "manager"},
	{"managr", "manager"},
	{"technicin", "technician"},
	{"technican", "technician"},
	{"specilist", "specialist"},
	{"specalist", "specialist"},
	{"markting", "marketing"},
	{"marktng", "marketing"},
	{"salse", "sales"},
	{"slaes", "sales"},

	// Locations
	{"berln", "berlin"},
	{"berline", "berlin"},
	{"hambrg", "hamburg"},
	{"hambourg", "hamburg"},
	{"munic", "munich"},
	{"munchen", "munich"},
	{"münchen", "munich"},
	{"stutgart", "stuttgart"},
	{"stuttgrt", "stuttgart"},
	{"bremn", "bremen"},
	{"bremem", "bremen"},

	// Skills and technologies
	{"pythn", "python"},
	{"pythno", "python"},
	{"javascrpt", "javascript"},
	{"javascritp", "javascript"},
	{"javscript", "javascript"},
	{"reactjs", "react"},
	{"nodejs", "node"},
	{"angulr", "angular"},
	{"angualr", "angular"},

	// Experience levels
	{"senor", "senior"},
	{"senir", "senior"},
	{"junor", "junior"},
	{"juinor", "junior"},
	{"experinced", "experienced"},
	{"experianced", "experienced"},
	{"fresher", "entry level"},
	{"freshers", "entry level"},
	{"beginer", "beginner"},
	{"beginr", "beginner"},

	// Common words
	{"loking", "looking"},
	{"serch", "search"},
	{"availble", "available"},
	{"opportunty", "opportunity"},
	{"postion", "position"},
	{"requirments", "requirements"},
}

// patterns holds one compiled whole-word pattern per table entry, in table
// order so replacement is deterministic.
var patterns = compile()

func compile() []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(corrections))
	for i, entry := range corrections {
		compiled[i] = regexp.MustCompile(fmt.Sprintf(`\b%s\b`, regexp.QuoteMeta(entry.misspelling)))
	}
	return compiled
}

// Normalize lower-cases text and replaces every whole-word occurrence of a
// known misspelling with its canonical form. Empty or whitespace-only input
// is returned unchanged (apart from lower-casing, which is a no-op there).
func Normalize(text string) string {
	normalized := strings.ToLower(text)
	for i, pattern := range patterns {
		normalized = pattern.ReplaceAllString(normalized, corrections[i].corrected)
	}
	return normalized
}
