package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"quizgame/quiz"
	"quizgame/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService        *services.QuizService
	leaderboardService *services.LeaderboardService
}

func NewQuizHandler(quizService *services.QuizService, leaderboardService *services.LeaderboardService) *QuizHandler {
	return &QuizHandler{
		quizService:        quizService,
		leaderboardService: leaderboardService,
	}
}

type StartRequest struct {
	Difficulty string `form:"difficulty" json:"difficulty"`
	Seed       int64  `form:"seed" json:"seed"`
}

type SubmitRequest struct {
	Seed       int64    `form:"seed" json:"seed"`
	Difficulty string   `form:"difficulty" json:"difficulty"`
	Answers    []string `form:"answers" json:"answers"`
	Feedback   string   `form:"feedback" json:"feedback"`
}

type FeedbackRequest struct {
	Seed       int64  `form:"seed" json:"seed"`
	Difficulty string `form:"difficulty" json:"difficulty"`
	Feedback   string `form:"feedback" json:"feedback"`
}

// QuizView is the page model every quiz route renders: attempt state plus the
// freshly computed leaderboard.
type QuizView struct {
	Username        string           `json:"username"`
	IsStarted       bool             `json:"is_started"`
	Difficulty      string           `json:"difficulty"`
	TimerSeconds    int              `json:"timer_seconds"`
	Seed            int64            `json:"seed,omitempty"`
	Questions       []QuestionView   `json:"questions,omitempty"`
	LastScore       *int             `json:"last_score,omitempty"`
	LastCorrectness []bool           `json:"last_correctness,omitempty"`
	FeedbackSaved   bool             `json:"feedback_saved,omitempty"`
	TopScores       []services.Entry `json:"top_scores"`
	GlobalHighScore *services.Entry  `json:"global_high_score"`
	YourHighScore   int              `json:"your_high_score"`
}

type QuestionView struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	// Correct index stays server-side
}

// Index renders the quiz landing page: no attempt in progress, defaults, and
// the leaderboard.
func (h *QuizHandler) Index(c *gin.Context) {
	userID, username, ok := currentUser(c)
	if !ok {
		return
	}

	view := QuizView{
		Username:     username,
		Difficulty:   "Easy",
		TimerSeconds: 60,
		IsStarted:    false,
	}

	if !h.loadLeaderboard(c, &view, userID) {
		return
	}

	c.JSON(http.StatusOK, view)
}

// Start begins an attempt: fresh seed, difficulty-based timer, shuffled
// questions.
func (h *QuizHandler) Start(c *gin.Context) {
	userID, username, ok := currentUser(c)
	if !ok {
		return
	}

	var req StartRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seed, timer, questions := h.quizService.Start(req.Difficulty, req.Seed)

	view := QuizView{
		Username:     username,
		IsStarted:    true,
		Difficulty:   normalizeDifficulty(req.Difficulty),
		TimerSeconds: timer,
		Seed:         seed,
		Questions:    questionViews(questions),
	}

	if !h.loadLeaderboard(c, &view, userID) {
		return
	}

	c.JSON(http.StatusOK, view)
}

// Submit scores an attempt against the question order its seed reproduces,
// persists the score (and any non-blank feedback), and re-renders with the
// refreshed leaderboard.
func (h *QuizHandler) Submit(c *gin.Context) {
	userID, username, ok := currentUser(c)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.quizService.Submit(userID, req.Seed, parseAnswers(req.Answers), req.Feedback)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save score"})
		return
	}

	view := QuizView{
		Username:        username,
		IsStarted:       true,
		Difficulty:      normalizeDifficulty(req.Difficulty),
		TimerSeconds:    quiz.TimerSeconds(req.Difficulty),
		Seed:            result.Seed,
		Questions:       questionViews(result.Questions),
		LastScore:       &result.Score,
		LastCorrectness: result.Correctness,
	}

	if !h.loadLeaderboard(c, &view, userID) {
		return
	}

	c.JSON(http.StatusOK, view)
}

// Feedback persists feedback without recording a score, then re-renders the
// same attempt.
func (h *QuizHandler) Feedback(c *gin.Context) {
	userID, username, ok := currentUser(c)
	if !ok {
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.quizService.SaveFeedback(userID, req.Feedback); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
		return
	}

	seed, timer, questions := h.quizService.Start(req.Difficulty, req.Seed)

	view := QuizView{
		Username:      username,
		IsStarted:     true,
		Difficulty:    normalizeDifficulty(req.Difficulty),
		TimerSeconds:  timer,
		Seed:          seed,
		Questions:     questionViews(questions),
		FeedbackSaved: true,
	}

	if !h.loadLeaderboard(c, &view, userID) {
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *QuizHandler) loadLeaderboard(c *gin.Context, view *QuizView, userID uint) bool {
	top, err := h.leaderboardService.Top10()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard"})
		return false
	}

	global, err := h.leaderboardService.GlobalBest()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard"})
		return false
	}

	personal, err := h.leaderboardService.PersonalBest(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard"})
		return false
	}

	view.TopScores = top
	view.GlobalHighScore = global
	view.YourHighScore = personal
	return true
}

func currentUser(c *gin.Context) (uint, string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, "", false
	}
	username, _ := c.Get("username")
	name, _ := username.(string)
	return userID.(uint), name, true
}

func questionViews(questions []quiz.Question) []QuestionView {
	views := make([]QuestionView, len(questions))
	for i, question := range questions {
		views[i] = QuestionView{Text: question.Text, Options: question.Options}
	}
	return views
}

// parseAnswers turns the round-tripped answer fields into option indices.
// Anything unparsable becomes the no-answer sentinel; scoring treats it as
// incorrect.
func parseAnswers(raw []string) []int {
	answers := make([]int, len(raw))
	for i, value := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			n = quiz.NoAnswer
		}
		answers[i] = n
	}
	return answers
}

func normalizeDifficulty(difficulty string) string {
	if difficulty == "" {
		return "Easy"
	}
	return difficulty
}
