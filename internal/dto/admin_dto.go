package dto

import (
	"time"

	"github.com/google/uuid"
	"mathew.com/nurserydirectory/internal/model"
)

// AdminGroupRow is the flattened admin listing row (owner fields pulled
// up so the table needs no nested objects).
type AdminGroupRow struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	City           string    `json:"city"`
	Town           *string   `json:"town,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	OwnerID        uuid.UUID `json:"owner_id"`
	OwnerFirstName string    `json:"owner_first_name"`
	OwnerLastName  string    `json:"owner_last_name"`
	OwnerEmail     string    `json:"owner_email"`
	OwnerPhone     *string   `json:"owner_phone,omitempty"`
	OwnerIsOnline  bool      `json:"owner_is_online"`
	NurseriesCount int64     `json:"nurseries_count"`
}

type AdminNurseryRow struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	City           string     `json:"city"`
	Town           *string    `json:"town,omitempty"`
	IsApproved     bool       `json:"is_approved"`
	IsVerified     bool       `json:"is_verified"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	OwnerID        uuid.UUID  `json:"owner_id"`
	OwnerFirstName string     `json:"owner_first_name"`
	OwnerLastName  string     `json:"owner_last_name"`
	OwnerEmail     string     `json:"owner_email"`
	OwnerPhone     *string    `json:"owner_phone,omitempty"`
	OwnerIsOnline  bool       `json:"owner_is_online"`
	GroupID        *uuid.UUID `json:"group_id,omitempty"`
	GroupName      *string    `json:"group_name,omitempty"`
	AverageRating  float64    `json:"average_rating"`
	ReviewsCount   int        `json:"reviews_count"`
}

// AdminOwnerRow pairs a nursery owner with their group name and how
// many nurseries they run.
type AdminOwnerRow struct {
	*model.User
	GroupName      *string `json:"group_name,omitempty"`
	NurseriesCount int64   `json:"nurseries_count"`
}

type DashboardStats struct {
	TotalNurseries   int64 `json:"total_nurseries"`
	TotalGroups      int64 `json:"total_groups"`
	TotalUsers       int64 `json:"total_users"`
	TotalReviews     int64 `json:"total_reviews"`
	RejectedReviews  int64 `json:"rejected_reviews"`
	PendingApprovals int64 `json:"pending_approvals"`
}

type MonthlyUserStat struct {
	Month string `json:"month"`
	Users int    `json:"users"`
}

type MonthlyUserStats struct {
	MonthlyUsers []MonthlyUserStat `json:"monthly_users"`
	TotalUsers   int               `json:"total_users"`
}

type MonthlyReviewStat struct {
	Month    string `json:"month"`
	Reviews  int    `json:"reviews"`
	Approved int    `json:"approved"`
	Pending  int    `json:"pending"`
}

type MonthlyReviewStats struct {
	MonthlyReviews []MonthlyReviewStat `json:"monthly_reviews"`
	TotalReviews   int                 `json:"total_reviews"`
	TotalApproved  int                 `json:"total_approved"`
}

// AdminUpdateGroupInput patches any group; a changed name regenerates
// the slug with the group itself excluded from the uniqueness probe.
type AdminUpdateGroupInput struct {
	Name        *string   `json:"name"`
	Logo        *string   `json:"logo"`
	CardImage   *string   `json:"card_image"`
	Images      *[]string `json:"images"`
	AboutUs     *string   `json:"about_us"`
	Description *string   `json:"description"`
	City        *string   `json:"city"`
	Town        *string   `json:"town"`
	Email       *string   `json:"email" binding:"omitempty,email"`
	Phone       *string   `json:"phone"`
}

type ReviewListQuery struct {
	ListQuery
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}
