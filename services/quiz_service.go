package services

import (
	"strings"

	"quizgame/models"
	"quizgame/quiz"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// SubmitResult is everything a scored attempt produces: the seed the order
// was rebuilt from, the per-question verdicts, and that order itself so the
// caller can render the attempt back.
type SubmitResult struct {
	Seed        int64
	Score       int
	Correctness []bool
	Questions   []quiz.Question
}

// Start begins an attempt: a fresh non-zero seed unless the caller already
// carries one, the timer for the chosen difficulty, and the question order
// for that seed.
func (s *QuizService) Start(difficulty string, seed int64) (int64, int, []quiz.Question) {
	if seed == 0 {
		seed = quiz.NewSeed()
	}
	return seed, quiz.TimerSeconds(difficulty), quiz.Shuffle(seed)
}

// Submit rebuilds the seed's question order, scores the submitted answer
// indices against it, and records the score. Feedback rides along only when
// it is non-blank after trimming.
func (s *QuizService) Submit(userID uint, seed int64, answers []int, feedback string) (*SubmitResult, error) {
	if seed == 0 {
		seed = quiz.NewSeed()
	}

	questions := quiz.Shuffle(seed)
	score, correctness := quiz.ScoreAnswers(questions, answers)

	if err := s.db.Create(&models.Score{UserID: userID, Score: score}).Error; err != nil {
		return nil, err
	}
	if err := s.SaveFeedback(userID, feedback); err != nil {
		return nil, err
	}

	return &SubmitResult{
		Seed:        seed,
		Score:       score,
		Correctness: correctness,
		Questions:   questions,
	}, nil
}

// SaveFeedback persists feedback without recording a score. Blank or
// whitespace-only text is silently dropped.
func (s *QuizService) SaveFeedback(userID uint, feedback string) error {
	message := strings.TrimSpace(feedback)
	if message == "" {
		return nil
	}
	return s.db.Create(&models.Feedback{UserID: userID, Message: message}).Error
}
