package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomFeed is a saved set of feed filters. It is stored and listed only;
// applying it is left to the client.
type CustomFeed struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	UserID     string    `json:"user_id" gorm:"size:36;index"`
	Name       string    `json:"name"`
	Platforms  []string  `json:"platforms" gorm:"serializer:json"`
	Categories []string  `json:"categories" gorm:"serializer:json"`
	TimeRange  string    `json:"time_range"`
	SortBy     string    `json:"sort_by"`
	CreatedAt  time.Time `json:"created_at"`
}

func (f *CustomFeed) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

type CreateCustomFeedRequest struct {
	Name       string   `json:"name" validate:"required,min=1,max=100"`
	Platforms  []string `json:"platforms" validate:"omitempty,dive,platform"`
	Categories []string `json:"categories" validate:"omitempty,dive,category"`
	TimeRange  string   `json:"time_range" validate:"omitempty,oneof=24h 7d 30d all"`
	SortBy     string   `json:"sort_by" validate:"omitempty,oneof=date likes comments engagement"`
}
