package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. ADMIN is a single seeded account; NURSERY_OWNER, PARENT
// and USER signups start inactive until an admin approves them.
const (
	RoleAdmin        = "ADMIN"
	RoleNurseryOwner = "NURSERY_OWNER"
	RoleParent       = "PARENT"
	RoleUser         = "USER"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FirstName    string    `gorm:"size:100;not null" json:"first_name"`
	LastName     string    `gorm:"size:100;not null" json:"last_name"`
	Phone        *string   `gorm:"size:30" json:"phone,omitempty"`
	Role         string    `gorm:"size:20;not null;index" json:"role"`
	IsActive     bool      `gorm:"not null;default:false" json:"is_active"`
	IsOnline     bool      `gorm:"not null;default:false" json:"is_online"`
	IsVerified   bool      `gorm:"not null;default:false" json:"is_verified"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Groups    []Group   `gorm:"foreignKey:OwnerID" json:"groups,omitempty"`
	Nurseries []Nursery `gorm:"foreignKey:OwnerID" json:"nurseries,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
