package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Group is a childcare organization owning one or more nurseries.
// Its slug is unique among groups only; a nursery may carry the same slug.
type Group struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Slug        string    `gorm:"size:160;uniqueIndex;not null" json:"slug"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	AboutUs     *string   `gorm:"type:text" json:"about_us,omitempty"`
	Address     *string   `gorm:"size:255" json:"address,omitempty"`
	City        string    `gorm:"size:100;index" json:"city"`
	Town        *string   `gorm:"size:100" json:"town,omitempty"`
	Postcode    *string   `gorm:"size:20" json:"postcode,omitempty"`
	Email       *string   `gorm:"size:100" json:"email,omitempty"`
	Phone       *string   `gorm:"size:30" json:"phone,omitempty"`
	Logo        *string   `gorm:"type:text" json:"logo,omitempty"`
	CardImage   *string   `gorm:"type:text" json:"card_image,omitempty"`
	Images      []string  `gorm:"serializer:json" json:"images"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner       *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"owner,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Deleting a group keeps its nurseries (groupId goes null).
	Nurseries []Nursery `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"nurseries,omitempty"`
}

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
