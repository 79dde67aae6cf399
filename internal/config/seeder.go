package config

import (
	"log"

	"tabaro3-api/internal/adapters/persistence/models"
	"tabaro3-api/internal/core/domain"
	"tabaro3-api/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("Admin seeder skipped: %v", err)
	}

	log.Println("Database seeding completed")
	return nil
}

// seedAdminUser seeds the default admin account when no admin exists.
// Change the password after first login; this is a bootstrap convenience
// for fresh installs.
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash(getEnv("ADMIN_PASSWORD", "admin123456"))
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:  "admin",
		Email:     getEnv("ADMIN_EMAIL", "admin@tabaro3.example.com"),
		Password:  hashedPassword,
		FullName:  "System Administrator",
		Phone:     "0000000000",
		BloodType: domain.BloodTypeNA,
		Region:    domain.BloodTypeNA,
		SubRegion: domain.BloodTypeNA,
		IsDonor:   false,
		IsAdmin:   true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Admin user created: %s", admin.Username)
	return nil
}
