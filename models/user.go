package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt digest, never serialized
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Scores   []Score    `json:"scores,omitempty" gorm:"foreignKey:UserID"`
	Feedback []Feedback `json:"feedback,omitempty" gorm:"foreignKey:UserID"`
}
