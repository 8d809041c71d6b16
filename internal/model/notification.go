package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification entity tags.
const (
	NotificationEntityUser    = "USER"
	NotificationEntityNursery = "NURSERY"
	NotificationEntityReview  = "REVIEW"
)

// Notification is an admin-facing moderation event: a user awaiting or
// receiving approval, a freshly created nursery, a submitted review.
// Public reads never create notifications.
type Notification struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title    string    `gorm:"size:200;not null" json:"title"`
	Message  string    `gorm:"type:text;not null" json:"message"`
	Entity   string    `gorm:"size:20;not null;index" json:"entity"`
	EntityID string    `gorm:"size:64;not null" json:"entity_id"`
	IsRead   bool      `gorm:"not null;default:false;index" json:"is_read"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
