package client

import "sync"

// Session holds the authenticated user's id and bearer token for the
// lifetime of the process. It is injected into the Client rather than
// kept as package state, so callers decide how long a login lives.
type Session struct {
	mu     sync.RWMutex
	userID uint
	token  string
}

// NewSession returns an empty, unauthenticated session.
func NewSession() *Session {
	return &Session{}
}

// Init records the credentials issued at login.
func (s *Session) Init(userID uint, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	s.token = token
}

// Clear drops the credentials. Called on logout.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = 0
	s.token = ""
}

// UserID returns the logged-in user's id, or 0 when logged out.
func (s *Session) UserID() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Token returns the bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// LoggedIn reports whether a login has been recorded.
func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}
