package dto

import (
	"time"

	"github.com/google/uuid"
	"mathew.com/nurserydirectory/internal/model"
)

// SubmitReviewInput is the public review submission payload. UserID is
// attached by the handler when the submitter is signed in; anonymous
// submissions identify themselves through the contact fields only.
type SubmitReviewInput struct {
	NurseryID     uuid.UUID  `json:"nursery_id" binding:"required"`
	Title         *string    `json:"title"`
	Content       string     `json:"content" binding:"required"`
	Connection    *string    `json:"connection"`
	VisitDate     *time.Time `json:"visit_date"`
	FirstName     string     `json:"first_name" binding:"required,max=100"`
	LastName      string     `json:"last_name" binding:"required,max=100"`
	Email         string     `json:"email" binding:"required,email"`
	Telephone     *string    `json:"telephone"`
	InitialsOnly  bool       `json:"initials_only"`
	OverallRating float64    `json:"overall_rating" binding:"required,min=1,max=5"`
	Activities    *float64   `json:"activities" binding:"omitempty,min=1,max=5"`
	Care          *float64   `json:"care" binding:"omitempty,min=1,max=5"`
	Cleanliness   *float64   `json:"cleanliness" binding:"omitempty,min=1,max=5"`
	Facilities    *float64   `json:"facilities" binding:"omitempty,min=1,max=5"`
	Food          *float64   `json:"food" binding:"omitempty,min=1,max=5"`
	Learning      *float64   `json:"learning" binding:"omitempty,min=1,max=5"`
	Management    *float64   `json:"management" binding:"omitempty,min=1,max=5"`
	Resources     *float64   `json:"resources" binding:"omitempty,min=1,max=5"`
	Safeguarding  *float64   `json:"safeguarding" binding:"omitempty,min=1,max=5"`
	Staff         *float64   `json:"staff" binding:"omitempty,min=1,max=5"`
	Value         *float64   `json:"value" binding:"omitempty,min=1,max=5"`
}

type RejectReviewInput struct {
	Reason string `json:"reason" binding:"required"`
}

// ReviewWithStatus flattens a review with its derived lifecycle state
// for moderation listings.
type ReviewWithStatus struct {
	*model.Review
	Status string `json:"status"`
}

// OwnerReviewStats is the dashboard header for a nursery's reviews.
type OwnerReviewStats struct {
	AverageRating   float64 `json:"average_rating"`
	TotalReviews    int64   `json:"total_reviews"`
	PendingApproval int64   `json:"pending_approval"`
}

type OwnerReviews struct {
	Reviews []*model.Review  `json:"reviews"`
	Stats   OwnerReviewStats `json:"stats"`
}

type PaginatedReviews struct {
	Reviews    []ReviewWithStatus `json:"reviews"`
	Pagination PaginationMeta     `json:"pagination"`
}
