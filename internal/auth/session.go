package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionCookie is the browser cookie carrying the session token.
const SessionCookie = "invoice_session"

type session struct {
	userID    uuid.UUID
	expiresAt time.Time
}

// SessionStore is an in-memory token store with TTL expiry. Sessions do
// not survive a restart; users just log in again.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]session
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SessionStore{
		sessions: make(map[string]session),
		ttl:      ttl,
	}
}

// Issue creates a session for the user and returns the opaque token.
func (s *SessionStore) Issue(userID uuid.UUID) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	return token
}

// Lookup resolves a token to its user, evicting it when expired.
func (s *SessionStore) Lookup(token string) (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return uuid.Nil, false
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return uuid.Nil, false
	}
	return sess.userID, true
}

// Revoke drops the session, if present.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// TTL returns the configured session lifetime.
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}
