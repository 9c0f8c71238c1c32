package types

// SearchCriteria is the structured query extracted from one user turn.
// It lives only for the turn that created it.
//
// Experience is a single slot, not a set: overlapping experience phrases
// overwrite each other and the last match wins. Keywords keeps every token
// longer than two characters, duplicates included, because keyword scoring
// multiplies by occurrence count.
type SearchCriteria struct {
	JobTitles   []string `json:"job_titles"`
	Skills      []string `json:"skills"`
	Locations   []string `json:"locations"`
	Experience  string   `json:"experience"`
	Departments []string `json:"departments"`
	JobTypes    []string `json:"job_types"`
	Keywords    []string `json:"keywords"`
}

// IsEmpty reports whether no synonym category matched and no keywords
// survived, i.e. a fully generic query.
func (c *SearchCriteria) IsEmpty() bool {
	return len(c.JobTitles) == 0 &&
		len(c.Skills) == 0 &&
		len(c.Locations) == 0 &&
		c.Experience == "" &&
		len(c.Departments) == 0 &&
		len(c.JobTypes) == 0 &&
		len(c.Keywords) == 0
}
