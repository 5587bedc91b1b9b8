package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/passgate/passgate-go/internal/model"
)

// MemoryStore is an in-process UserStore backed by a map keyed on the
// lowercased email. The mutex makes Create a single check-and-insert, so two
// concurrent registrations with the same email cannot both pass the existence
// check.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]model.User
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]model.User)}
}

// Create inserts the user if the email key is absent, failing with
// ErrUserExists otherwise.
func (s *MemoryStore) Create(_ context.Context, user *model.User) error {
	key := strings.ToLower(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[key]; exists {
		return ErrUserExists
	}

	stored := *user
	stored.Email = key
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	s.users[key] = stored

	user.Email = stored.Email
	user.CreatedAt = stored.CreatedAt
	return nil
}

// GetByEmail retrieves a user by email, failing with ErrUserNotFound if the
// lowercased key is absent.
func (s *MemoryStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	key := strings.ToLower(email)

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[key]
	if !exists {
		return nil, ErrUserNotFound
	}

	u := user
	return &u, nil
}

// Len reports the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
