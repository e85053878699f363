// Package accounts provides the in-memory user administration store.
package accounts

import (
	"sync"

	"topup-admin/internal/model"
)

// UserUpdate patches an existing user. Nil fields are left unchanged.
type UserUpdate struct {
	Email    *string
	Username *string
	Phone    *string
	IsActive *bool
}

// Store holds the administrable user list.
type Store struct {
	mu    sync.RWMutex
	users []model.User
}

// NewStore seeds a store with the given users. The slice is copied.
func NewStore(seed []model.User) *Store {
	s := &Store{users: make([]model.User, len(seed))}
	copy(s.users, seed)
	return s
}

// List returns a copy of the current user list.
func (s *Store) List() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// Get returns the user with the given id, or false.
func (s *Store) Get(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// Update patches the user. Returns false if the id is unknown.
func (s *Store) Update(id string, upd UserUpdate) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		u := s.users[i]
		if upd.Email != nil {
			u.Email = *upd.Email
		}
		if upd.Username != nil {
			u.Username = *upd.Username
		}
		if upd.Phone != nil {
			u.Phone = *upd.Phone
		}
		if upd.IsActive != nil {
			active := *upd.IsActive
			u.IsActive = &active
		}
		s.users[i] = u
		return u, true
	}
	return model.User{}, false
}

// ToggleActive flips the user's active flag. Users without an explicit flag
// count as active, so the first toggle deactivates them.
func (s *Store) ToggleActive(id string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		next := !s.users[i].Active()
		s.users[i].IsActive = &next
		return s.users[i], true
	}
	return model.User{}, false
}

// Delete removes the user by id.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}
