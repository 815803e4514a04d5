package services

import (
	"gorm.io/gorm"
)

// Entry is one leaderboard row.
type Entry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// LeaderboardService runs the three read-only leaderboard queries. Nothing is
// cached; every page render recomputes from the scores table.
type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// Top10 returns each user's best score, highest first, capped at ten rows.
func (s *LeaderboardService) Top10() ([]Entry, error) {
	var entries []Entry
	err := s.db.Table("scores").
		Select("users.username, MAX(scores.score) AS score").
		Joins("JOIN users ON users.id = scores.user_id").
		Group("users.username").
		Order("score DESC").
		Limit(10).
		Scan(&entries).Error
	return entries, err
}

// GlobalBest returns the single highest recorded score with its owner, or nil
// when no score has been recorded yet.
func (s *LeaderboardService) GlobalBest() (*Entry, error) {
	var entry Entry
	result := s.db.Table("scores").
		Select("users.username, scores.score").
		Joins("JOIN users ON users.id = scores.user_id").
		Order("scores.score DESC").
		Limit(1).
		Scan(&entry)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &entry, nil
}

// PersonalBest returns the user's highest score, zero when they have none.
func (s *LeaderboardService) PersonalBest(userID uint) (int, error) {
	var best int
	err := s.db.Table("scores").
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(score), 0)").
		Scan(&best).Error
	return best, err
}
