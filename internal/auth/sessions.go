package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionDuration is how long a token stays valid (24h).
const SessionDuration = 24 * time.Hour

type session struct {
	userID    int
	expiresAt time.Time
}

// Sessions maps bearer tokens to user ids, in process memory. Sessions live
// here regardless of which storage backend is configured; they do not survive
// a restart.
type Sessions struct {
	mu       sync.RWMutex
	byToken  map[string]session
	duration time.Duration
}

func NewSessions() *Sessions {
	return &Sessions{
		byToken:  make(map[string]session),
		duration: SessionDuration,
	}
}

// Create issues a fresh token for the user.
func (s *Sessions) Create(userID int) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byToken[token] = session{
		userID:    userID,
		expiresAt: time.Now().Add(s.duration),
	}
	return token
}

// UserID resolves a token to its user. Expired tokens are dropped on the spot
// and report as unknown.
func (s *Sessions) UserID(token string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byToken[token]
	if !ok {
		return 0, false
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.byToken, token)
		return 0, false
	}
	return sess.userID, true
}

// Invalidate forgets a token. Unknown tokens are a no-op.
func (s *Sessions) Invalidate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byToken, token)
}
