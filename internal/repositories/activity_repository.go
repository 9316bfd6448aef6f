package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/anonto42/chyll/backend/internal/models"
)

// ActivityRepository is an append-only log of user actions
type ActivityRepository interface {
	LogActivity(ctx context.Context, userID string, action models.ActivityAction, postID string) error
	GetActivities(ctx context.Context, userID string, limit int) ([]models.Activity, error)
}

type PostgresActivityRepository struct {
	db *gorm.DB
}

func NewPostgresActivityRepository(db *gorm.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) LogActivity(ctx context.Context, userID string, action models.ActivityAction, postID string) error {
	return r.db.WithContext(ctx).Create(&models.Activity{
		UserID:    userID,
		Action:    action,
		PostID:    postID,
		Timestamp: time.Now().UTC(),
	}).Error
}

// GetActivities returns the newest activities first
func (r *PostgresActivityRepository) GetActivities(ctx context.Context, userID string, limit int) ([]models.Activity, error) {
	activities := []models.Activity{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").Order("id DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
