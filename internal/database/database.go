package database

import (
	"log"

	"github.com/hamidmukhtar/SpaceTravelHub/internal/config"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto Migrate
	err = db.AutoMigrate(
		&models.User{},
		&models.Destination{},
		&models.Package{},
		&models.Accommodation{},
		&models.Testimonial{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	return db
}
