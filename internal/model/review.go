package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review lifecycle states derived from the two flags. IsApproved and
// IsRejected are independent columns, but a review counts toward the
// public rating only when approved and not rejected.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

type Review struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	NurseryID uuid.UUID  `gorm:"type:uuid;not null;index" json:"nursery_id"`
	Nursery   *Nursery   `json:"nursery,omitempty"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	User      *User      `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`

	Title      *string    `gorm:"size:200" json:"title,omitempty"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Connection *string    `gorm:"size:100" json:"connection,omitempty"`
	VisitDate  *time.Time `json:"visit_date,omitempty"`

	// Submitter contact fields; anonymous submissions carry no UserID.
	FirstName    string  `gorm:"size:100;not null" json:"first_name"`
	LastName     string  `gorm:"size:100;not null" json:"last_name"`
	Email        string  `gorm:"size:100;not null" json:"email"`
	Telephone    *string `gorm:"size:30" json:"telephone,omitempty"`
	InitialsOnly bool    `gorm:"not null;default:false" json:"initials_only"`

	OverallRating float64  `gorm:"not null" json:"overall_rating"`
	Activities    *float64 `json:"activities,omitempty"`
	Care          *float64 `json:"care,omitempty"`
	Cleanliness   *float64 `json:"cleanliness,omitempty"`
	Facilities    *float64 `json:"facilities,omitempty"`
	Food          *float64 `json:"food,omitempty"`
	Learning      *float64 `json:"learning,omitempty"`
	Management    *float64 `json:"management,omitempty"`
	Resources     *float64 `json:"resources,omitempty"`
	Safeguarding  *float64 `json:"safeguarding,omitempty"`
	Staff         *float64 `json:"staff,omitempty"`
	Value         *float64 `json:"value,omitempty"`

	IsApproved      bool       `gorm:"not null;default:false;index" json:"is_approved"`
	IsRejected      bool       `gorm:"not null;default:false;index" json:"is_rejected"`
	RejectionReason *string    `gorm:"type:text" json:"rejection_reason,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	IsVerified      bool       `gorm:"not null;default:false" json:"is_verified"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Status collapses the two moderation flags into the lifecycle state.
// Rejected wins over approved when both are set.
func (r *Review) Status() string {
	switch {
	case r.IsRejected:
		return ReviewStatusRejected
	case r.IsApproved:
		return ReviewStatusApproved
	default:
		return ReviewStatusPending
	}
}

// Counted reports whether the review is eligible to contribute to the
// public average rating.
func (r *Review) Counted() bool {
	return r.IsApproved && !r.IsRejected
}
