// Package chat keeps assistant conversations in memory: named sessions with
// an append-only message log.
package chat

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"topup-admin/internal/model"
)

var ErrSessionNotFound = errors.New("chat: session not found")

// Session is one named conversation.
type Session struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
	Messages  []model.ChatMessage `json:"messages"`
}

// Store holds sessions in memory. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{sessions: make(map[string]*Session), now: now}
}

// Create opens a new named session and returns its copy.
func (s *Store) Create(name string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now().UTC()
	sess := &Session{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions[sess.ID] = sess
	return copySession(sess)
}

// Append adds a message to a session. msgType is model.ChatUser or
// model.ChatBot; the message gets a fresh uuid and the store's timestamp.
func (s *Store) Append(sessionID, msgType, content string) (model.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return model.ChatMessage{}, ErrSessionNotFound
	}
	msg := model.ChatMessage{
		ID:        uuid.NewString(),
		Type:      msgType,
		Content:   content,
		Timestamp: s.now().UTC(),
	}
	sess.Messages = append(sess.Messages, msg)
	sess.UpdatedAt = msg.Timestamp
	return msg, nil
}

// Get returns a copy of one session.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	return copySession(sess), true
}

// List returns all sessions, most recently updated first.
func (s *Store) List() []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, copySession(sess))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Delete removes a session, reporting whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func copySession(sess *Session) Session {
	out := *sess
	out.Messages = append([]model.ChatMessage(nil), sess.Messages...)
	return out
}
