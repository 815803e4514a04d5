package services

import (
	"fmt"
	"testing"

	"quizgame/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the same gorm
// configuration the server uses, migrated to the real schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Score{}, &models.Feedback{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// mustCreateUser inserts a user directly, bypassing registration.
func mustCreateUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	user := models.User{Username: username, Email: email, Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return &user
}

func mustCreateScore(t *testing.T, db *gorm.DB, userID uint, score int) {
	t.Helper()

	if err := db.Create(&models.Score{UserID: userID, Score: score}).Error; err != nil {
		t.Fatalf("failed to create score for user %d: %v", userID, err)
	}
}
