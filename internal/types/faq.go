package types

// FAQ represents a frequently asked question with its rich-text answer.
// The answer may contain simple HTML markup; the presentation layer decides
// how to render it.
type FAQ struct {
	Question string   `json:"question" validate:"required"`
	Answer   string   `json:"answer" validate:"required"`
	Keywords []string `json:"keywords" validate:"required,min=1,dive,required"`
}
