package models

import (
	"time"
)

// UserActivity is a suggestion the user chose to track. The external key is
// deliberately not unique: two users can save the same suggestion, and a user
// re-saving one is allowed at this layer.
type UserActivity struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Key          int       `json:"key" gorm:"not null;index"`
	Title        string    `json:"title" gorm:"not null"`
	Type         string    `json:"type" gorm:"not null"`
	Participants int       `json:"participants" gorm:"not null;default:1"`
	Price        float64   `json:"price" gorm:"not null;default:0"`
	Timestamp    time.Time `json:"timestamp" gorm:"not null"`
	IsCompleted  bool      `json:"is_completed" gorm:"not null;default:false"`
	Note         *string   `json:"note,omitempty"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
}

// IgnoredActivity is a dismissed suggestion. Unique per (user, key) so
// ignoring the same suggestion twice stays idempotent.
type IgnoredActivity struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Title  string `json:"title" gorm:"not null"`
	Key    int    `json:"key" gorm:"not null;uniqueIndex:idx_ignored_user_key"`
	UserID uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_ignored_user_key"`
}

type SaveActivityRequest struct {
	Key          int     `json:"key" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Type         string  `json:"type" validate:"required,activity_type"`
	Participants int     `json:"participants" validate:"omitempty,gte=1"`
	Price        float64 `json:"price" validate:"gte=0"`
	Note         *string `json:"note,omitempty"`
}

type IgnoreActivityRequest struct {
	Key   int    `json:"key" validate:"required"`
	Title string `json:"title" validate:"required"`
}
