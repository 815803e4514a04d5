package models

import (
	"time"
)

// Feedback is an optional free-text note left with (or without) a quiz
// submission. Append-only, and only ever created with non-blank text.
type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Message   string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User User `json:"user,omitempty"`
}
