package dto

// RatingSummary is the derived pair attached to every public nursery
// read, recomputed from counted reviews on each request.
type RatingSummary struct {
	AverageRating float64 `json:"average_rating"`
	ReviewsCount  int     `json:"reviews_count"`
}

type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ListQuery is the common admin listing parameter set. Sort keys are
// validated against per-entity allowlists before any query is built.
type ListQuery struct {
	Search    string `form:"search_query"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Status    string `form:"status"`
}
