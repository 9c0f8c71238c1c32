// Package types provides type definitions for structured data used throughout the zeppy assistant.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Job represents a single job listing from the corpus.
// Records are immutable once loaded; resolvers only read them.
type Job struct {
	ID           int      `json:"id" validate:"required,gt=0"`
	Title        string   `json:"title" validate:"required"`
	Department   string   `json:"department" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Type         string   `json:"type" validate:"required"`
	Salary       string   `json:"salary"`
	Description  string   `json:"description" validate:"required"`
	Requirements []string `json:"requirements" validate:"required,min=1,dive,required"`
	Keywords     []string `json:"keywords"`
}

// RankedJob pairs a job with the relevance score computed for one search.
// Produced fresh on every ranking call, never persisted.
type RankedJob struct {
	Job            Job     `json:"job"`
	RelevanceScore float64 `json:"relevance_score"`
}
