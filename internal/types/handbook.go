package types

// Handbook is the structured company handbook document.
type Handbook struct {
	Name         string           `json:"name" validate:"required"`
	Description  string           `json:"description" validate:"required"`
	Founded      string           `json:"founded"`
	Headquarters string           `json:"headquarters"`
	Mission      string           `json:"mission" validate:"required"`
	Vision       string           `json:"vision" validate:"required"`
	Values       []string         `json:"values" validate:"required,min=1"`
	Culture      Culture          `json:"culture"`
	Locations    []OfficeLocation `json:"locations" validate:"min=1,dive"`
	Keywords     []string         `json:"keywords"`
}

// Culture holds the free-text culture sub-fields of the handbook.
type Culture struct {
	WorkEnvironment     string `json:"work_environment"`
	TeamSpirit          string `json:"team_spirit"`
	GrowthOpportunities string `json:"growth_opportunities"`
	WorkLifeBalance     string `json:"work_life_balance"`
}

// OfficeLocation describes one company site.
type OfficeLocation struct {
	City  string `json:"city" validate:"required"`
	Type  string `json:"type"`
	Focus string `json:"focus"`
}
