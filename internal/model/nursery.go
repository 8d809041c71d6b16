package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpeningHours is a plain open/close pair, stored as JSON.
type OpeningHours struct {
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}

// Nursery is a single childcare facility, the primary listed entity.
// IsApproved doubles as the public active/inactive flag; there is no
// separate "active" field.
type Nursery struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string        `gorm:"size:150;not null" json:"name"`
	Slug         string        `gorm:"size:160;uniqueIndex;not null" json:"slug"`
	Description  *string       `gorm:"type:text" json:"description,omitempty"`
	Address      *string       `gorm:"size:255" json:"address,omitempty"`
	City         string        `gorm:"size:100;index" json:"city"`
	Town         *string       `gorm:"size:100" json:"town,omitempty"`
	Postcode     *string       `gorm:"size:20" json:"postcode,omitempty"`
	Phone        *string       `gorm:"size:30" json:"phone,omitempty"`
	Email        *string       `gorm:"size:100" json:"email,omitempty"`
	Website      *string       `gorm:"size:255" json:"website,omitempty"`
	Logo         *string       `gorm:"type:text" json:"logo,omitempty"`
	CardImage    *string       `gorm:"type:text" json:"card_image,omitempty"`
	Images       []string      `gorm:"serializer:json" json:"images"`
	VideoURL     *string       `gorm:"size:255" json:"video_url,omitempty"`
	AboutUs      *string       `gorm:"type:text" json:"about_us,omitempty"`
	Philosophy   *string       `gorm:"type:text" json:"philosophy,omitempty"`
	AgeRange     *string       `gorm:"size:50" json:"age_range,omitempty"`
	Capacity     *int          `json:"capacity,omitempty"`
	Fees         *string       `gorm:"type:text" json:"fees,omitempty"`
	OpeningHours *OpeningHours `gorm:"serializer:json" json:"opening_hours,omitempty"`
	Facilities   []string      `gorm:"serializer:json" json:"facilities"`
	IsApproved   bool          `gorm:"not null;default:true;index" json:"is_approved"`
	IsVerified   bool          `gorm:"not null;default:false" json:"is_verified"`
	OwnerID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner        *User         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"owner,omitempty"`
	GroupID      *uuid.UUID    `gorm:"type:uuid;index" json:"group_id,omitempty"`
	Group        *Group        `json:"group,omitempty"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Reviews go down with the nursery.
	Reviews []Review `gorm:"foreignKey:NurseryID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

func (n *Nursery) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
