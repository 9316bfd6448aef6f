package models

import "time"

// Favorite marks a post as saved by a user
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"size:36;index;uniqueIndex:idx_user_post_favorite"`
	PostID    string    `json:"post_id" gorm:"size:64;index;uniqueIndex:idx_user_post_favorite"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "user_favorites"
}
