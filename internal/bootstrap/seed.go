package bootstrap

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"mathew.com/nurserydirectory/internal/config"
	"mathew.com/nurserydirectory/internal/model"
)

// SeedAdmin makes sure the configured admin account exists. The admin
// is a normal row with the ADMIN role; its credentials come from config
// instead of being hardcoded.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", cfg.AdminEmail).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashedPassword),
		FirstName:    "Site",
		LastName:     "Admin",
		Role:         model.RoleAdmin,
		IsActive:     true,
		IsVerified:   true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Admin user seeded (%s)", cfg.AdminEmail)
	return nil
}

// Migrate runs the schema migration for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Nursery{},
		&model.Review{},
		&model.Notification{},
	)
}
