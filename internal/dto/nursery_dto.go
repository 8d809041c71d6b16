package dto

import (
	"github.com/google/uuid"
	"mathew.com/nurserydirectory/internal/model"
)

type CreateNurseryInput struct {
	Name        string    `json:"name" binding:"required,max=150"`
	City        string    `json:"city" binding:"required,max=100"`
	Town        *string   `json:"town"`
	Description *string   `json:"description"`
	Address     *string   `json:"address"`
	Postcode    *string   `json:"postcode"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email" binding:"omitempty,email"`
	Website     *string   `json:"website"`
	AgeRange    *string   `json:"age_range"`
	Capacity    *int      `json:"capacity"`
	Fees        *string   `json:"fees"`
	OpeningTime *string   `json:"opening_time"`
	ClosingTime *string   `json:"closing_time"`
	Facilities  []string  `json:"facilities"`
	AboutUs     *string   `json:"about_us"`
	Philosophy  *string   `json:"philosophy"`
	CardImage   *string   `json:"card_image"`
	Images      *[]string `json:"images"`
	VideoURL    *string   `json:"video_url"`
}

// UpdateNurseryInput patches a nursery; nil fields are left untouched.
// A changed name regenerates the slug.
type UpdateNurseryInput struct {
	NurseryID   *uuid.UUID `json:"nursery_id"`
	Name        *string    `json:"name"`
	City        *string    `json:"city"`
	Town        *string    `json:"town"`
	Description *string    `json:"description"`
	Address     *string    `json:"address"`
	Postcode    *string    `json:"postcode"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email" binding:"omitempty,email"`
	Website     *string    `json:"website"`
	AgeRange    *string    `json:"age_range"`
	Capacity    *int       `json:"capacity"`
	Fees        *string    `json:"fees"`
	OpeningTime *string    `json:"opening_time"`
	ClosingTime *string    `json:"closing_time"`
	Facilities  *[]string  `json:"facilities"`
	AboutUs     *string    `json:"about_us"`
	Philosophy  *string    `json:"philosophy"`
	CardImage   *string    `json:"card_image"`
	Images      *[]string  `json:"images"`
	VideoURL    *string    `json:"video_url"`
}

// PublicNurseryQuery filters the public approved-nursery listing.
type PublicNurseryQuery struct {
	City       string   `form:"city"`
	Search     string   `form:"search"`
	AgeRanges  []string `form:"age_range"`
	Facilities []string `form:"facilities"`
	Page       int      `form:"page,default=1" binding:"omitempty,min=1"`
	Limit      int      `form:"limit,default=100" binding:"omitempty,min=1,max=200"`
}

// NurseryWithRating is a nursery plus its derived rating pair.
type NurseryWithRating struct {
	*model.Nursery
	RatingSummary
}

// NurserySummary is the compact shape used by autocomplete and the
// city search panel.
type NurserySummary struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Slug      string        `json:"slug"`
	City      string        `json:"city"`
	Town      *string       `json:"town,omitempty"`
	CardImage *string       `json:"card_image,omitempty"`
	Group     *GroupSummary `json:"group,omitempty"`
}

func NewNurserySummary(n *model.Nursery) NurserySummary {
	s := NurserySummary{
		ID:        n.ID,
		Name:      n.Name,
		Slug:      n.Slug,
		City:      n.City,
		Town:      n.Town,
		CardImage: n.CardImage,
	}
	if n.Group != nil {
		g := NewGroupSummary(n.Group)
		s.Group = &g
	}
	return s
}
