package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/anonto42/chyll/backend/internal/models"
)

// FavoriteRepository defines the interface for favorite post operations.
// Adding and removing are idempotent.
type FavoriteRepository interface {
	AddFavorite(ctx context.Context, userID, postID string) error
	RemoveFavorite(ctx context.Context, userID, postID string) error
	IsFavorite(ctx context.Context, userID, postID string) (bool, error)
	GetFavoritePostIDs(ctx context.Context, userID string) ([]string, error)
	CountFavorites(ctx context.Context, userID string) (int64, error)
}

// PostgresFavoriteRepository implements FavoriteRepository
type PostgresFavoriteRepository struct {
	db *gorm.DB
}

func NewPostgresFavoriteRepository(db *gorm.DB) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{db: db}
}

func (r *PostgresFavoriteRepository) AddFavorite(ctx context.Context, userID, postID string) error {
	fav := &models.Favorite{UserID: userID, PostID: postID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(fav).Error
}

func (r *PostgresFavoriteRepository) RemoveFavorite(ctx context.Context, userID, postID string) error {
	return r.db.WithContext(ctx).Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Favorite{}).Error
}

func (r *PostgresFavoriteRepository) IsFavorite(ctx context.Context, userID, postID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error
	return count > 0, err
}

// GetFavoritePostIDs returns post ids, most recently favorited first
func (r *PostgresFavoriteRepository) GetFavoritePostIDs(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Pluck("post_id", &ids).Error
	return ids, err
}

func (r *PostgresFavoriteRepository) CountFavorites(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
