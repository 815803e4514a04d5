package models

import (
	"time"
)

// Score is one completed quiz attempt. Rows are append-only: never updated,
// never deleted.
type Score struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Score     int       `json:"score" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User User `json:"user,omitempty"`
}
