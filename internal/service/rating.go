package service

import (
	"math"

	"mathew.com/nurserydirectory/internal/dto"
)

// SummarizeRatings averages the given overall ratings and rounds the
// mean to one decimal place. No ratings yields a zero summary rather
// than an error.
func SummarizeRatings(ratings []float64) dto.RatingSummary {
	if len(ratings) == 0 {
		return dto.RatingSummary{}
	}

	var sum float64
	for _, rating := range ratings {
		sum += rating
	}
	mean := sum / float64(len(ratings))

	return dto.RatingSummary{
		AverageRating: math.Round(mean*10) / 10,
		ReviewsCount:  len(ratings),
	}
}
