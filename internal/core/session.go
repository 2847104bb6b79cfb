package core

import "sync"

// Session holds state that outlives a single round, currently the high score.
// It is safe for concurrent use so one session can back several SSH clients.
type Session struct {
	mu        sync.Mutex
	highScore int
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// HighScore returns the best score submitted so far.
func (s *Session) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highScore
}

// Submit records score and reports whether it beat the previous high score.
func (s *Session) Submit(score int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if score <= s.highScore {
		return false
	}
	s.highScore = score
	return true
}

// Sessions maps game IDs to their sessions.
type Sessions struct {
	mu   sync.Mutex
	byID map[string]*Session
}

// NewSessions creates an empty session table.
func NewSessions() *Sessions {
	return &Sessions{byID: make(map[string]*Session)}
}

// For returns the session for gameID, creating it on first use.
func (s *Sessions) For(gameID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[gameID]
	if !ok {
		sess = NewSession()
		s.byID[gameID] = sess
	}
	return sess
}
