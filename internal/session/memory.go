package session

import (
	"sync"

	"github.com/tasnim/rise-and-shine-bot/internal/domain"
)

// MemoryStore implements domain.SessionStore in process memory. A
// restart drops every in-progress session; completed submissions are
// unaffected because they are already in the sheet.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[int64]*domain.Session),
	}
}

// Get returns a copy of the chat's session, if one exists
func (s *MemoryStore) Get(chatID int64) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[chatID]
	if !ok {
		return nil, false
	}

	copied := *sess
	return &copied, true
}

// Put stores the session under its chat ID, replacing any previous one
func (s *MemoryStore) Put(sess *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *sess
	s.sessions[sess.ChatID] = &copied
}

// Delete removes the chat's session, if any
func (s *MemoryStore) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
}
