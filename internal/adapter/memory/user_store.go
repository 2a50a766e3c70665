package memory

import (
	"context"
	"sync"

	"github.com/memehub/memehub/internal/core/model"
	"github.com/memehub/memehub/internal/core/port"
	"github.com/pkg/errors"
)

// UserStore is an in-memory port.UserStore, used by tests.
type UserStore struct {
	mu      sync.RWMutex
	users   map[model.UserID]model.User
	byEmail map[string]model.UserID
}

// CreateUser implements port.UserStore.
func (s *UserStore) CreateUser(ctx context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email()]; exists {
		return errors.WithStack(port.ErrDuplicateEmail)
	}

	s.users[user.ID()] = user
	s.byEmail[user.Email()] = user.ID()

	return nil
}

// GetUserByID implements port.UserStore.
func (s *UserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return user, nil
}

// FindUserByEmail implements port.UserStore.
func (s *UserStore) FindUserByEmail(ctx context.Context, email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, exists := s.byEmail[email]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return s.users[userID], nil
}

func NewUserStore() *UserStore {
	return &UserStore{
		users:   map[model.UserID]model.User{},
		byEmail: map[string]model.UserID{},
	}
}

var _ port.UserStore = &UserStore{}
