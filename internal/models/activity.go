package models

import "time"

type ActivityAction string

const (
	ActionLike       ActivityAction = "like"
	ActionComment    ActivityAction = "comment"
	ActionShare      ActivityAction = "share"
	ActionFavorite   ActivityAction = "favorite"
	ActionUnfavorite ActivityAction = "unfavorite"
	ActionLogin      ActivityAction = "login"
)

// Activity is an append-only record of something a user did
type Activity struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    string         `json:"user_id" gorm:"size:36;index"`
	Action    ActivityAction `json:"action" gorm:"size:20"`
	PostID    string         `json:"post_id,omitempty" gorm:"size:64"`
	Timestamp time.Time      `json:"timestamp" gorm:"index"`
}

func (Activity) TableName() string {
	return "user_activities"
}
