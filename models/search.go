package models

// SearchQueryInput is the transient cross-entity search request. It is never
// persisted.
type SearchQueryInput struct {
	Query string `json:"query"`
	Tag   string `json:"tag"`
	Type  string `json:"type" validate:"omitempty,oneof=all exercises projects"`
}
