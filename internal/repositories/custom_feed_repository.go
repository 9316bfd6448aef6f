package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/anonto42/chyll/backend/internal/models"
)

// CustomFeedRepository stores saved feed filter sets per user
type CustomFeedRepository interface {
	CreateFeed(ctx context.Context, feed *models.CustomFeed) error
	GetFeedsByUser(ctx context.Context, userID string) ([]models.CustomFeed, error)
	DeleteFeed(ctx context.Context, userID, feedID string) error
}

type PostgresCustomFeedRepository struct {
	db *gorm.DB
}

func NewPostgresCustomFeedRepository(db *gorm.DB) *PostgresCustomFeedRepository {
	return &PostgresCustomFeedRepository{db: db}
}

func (r *PostgresCustomFeedRepository) CreateFeed(ctx context.Context, feed *models.CustomFeed) error {
	if feed.Platforms == nil {
		feed.Platforms = []string{}
	}
	if feed.Categories == nil {
		feed.Categories = []string{}
	}
	return r.db.WithContext(ctx).Create(feed).Error
}

func (r *PostgresCustomFeedRepository) GetFeedsByUser(ctx context.Context, userID string) ([]models.CustomFeed, error) {
	feeds := []models.CustomFeed{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&feeds).Error
	return feeds, err
}

// DeleteFeed only removes feeds owned by userID
func (r *PostgresCustomFeedRepository) DeleteFeed(ctx context.Context, userID, feedID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", feedID, userID).Delete(&models.CustomFeed{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
