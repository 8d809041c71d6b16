package dto

// AutocompleteResult carries the four suggestion categories. Every
// category is capped at the configured autocomplete limit.
type AutocompleteResult struct {
	Cities    []string         `json:"cities"`
	Towns     []string         `json:"towns"`
	Groups    []GroupSummary   `json:"groups"`
	Nurseries []NurserySummary `json:"nurseries"`
}

// CitySearchResult is the featured panel for an exact city match:
// the newest groups and nurseries based there.
type CitySearchResult struct {
	City      string              `json:"city"`
	Groups    []CityGroup         `json:"groups"`
	Nurseries []NurseryWithRating `json:"nurseries"`
}
