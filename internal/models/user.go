package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                string                  `json:"id" gorm:"primaryKey;size:36"`
	Email             string                  `json:"email" gorm:"uniqueIndex;size:255"`
	Name              string                  `json:"name"`
	Picture           string                  `json:"picture,omitempty"`
	Bio               string                  `json:"bio,omitempty"`
	FavoritePlatforms []string                `json:"favoritePlatforms" gorm:"serializer:json"`
	Notifications     NotificationPreferences `json:"notificationPreferences" gorm:"embedded;embeddedPrefix:notify_"`
	FavoritePosts     []string                `json:"favoritePosts" gorm:"-"` // loaded from user_favorites
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
}

// NotificationPreferences are stored inline on the users table
type NotificationPreferences struct {
	EmailDigest    bool `json:"emailDigest"`
	NewPostAlerts  bool `json:"newPostAlerts"`
	TrendingAlerts bool `json:"trendingAlerts"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type UpdateProfileRequest struct {
	Name    string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Picture string `json:"picture,omitempty" validate:"omitempty,url"`
	Bio     string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

type UpdatePreferencesRequest struct {
	FavoritePlatforms []string                 `json:"favoritePlatforms" validate:"omitempty,dive,platform"`
	Notifications     *NotificationPreferences `json:"notificationPreferences,omitempty"`
}

// Session is an authenticated login, looked up by its opaque token
type Session struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;size:36"`
	Token     string    `json:"-" gorm:"uniqueIndex;size:512"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

func (Session) TableName() string {
	return "user_sessions"
}

type CreateSessionRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

// SessionClaims are the claims carried by a session token
type SessionClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
