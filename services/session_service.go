package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoSession is returned when a token has no live session behind it.
var ErrNoSession = errors.New("session not found")

// SessionTTL bounds how long a login stays valid without the user logging
// out. Redis enforces the expiry; nothing in this process tracks it.
const SessionTTL = 24 * time.Hour

// Session is the identity carried by an opaque per-browser token.
type Session struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

type SessionService struct {
	redis *redis.Client
}

func NewSessionService(redis *redis.Client) *SessionService {
	return &SessionService{redis: redis}
}

// Create stores a fresh session and returns its opaque token.
func (s *SessionService) Create(ctx context.Context, userID uint, username string) (string, error) {
	token := s.generateToken()

	data, err := json.Marshal(Session{UserID: userID, Username: username})
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %v", err)
	}

	if err := s.redis.Set(ctx, "session:"+token, data, SessionTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %v", err)
	}

	return token, nil
}

// Get resolves a token to its session. Unknown or expired tokens come back as
// ErrNoSession.
func (s *SessionService) Get(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	data, err := s.redis.Get(ctx, "session:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session: %v", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %v", err)
	}

	return &session, nil
}

// Clear drops the session unconditionally. Clearing an empty or unknown token
// is not an error.
func (s *SessionService) Clear(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.redis.Del(ctx, "session:"+token).Err()
}

func (s *SessionService) generateToken() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
