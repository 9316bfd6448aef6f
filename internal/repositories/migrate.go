package repositories

import (
	"gorm.io/gorm"

	"github.com/anonto42/chyll/backend/internal/models"
)

// Migrate creates or updates the relational tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Favorite{},
		&models.Activity{},
		&models.CustomFeed{},
	)
}
