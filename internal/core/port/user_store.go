package port

import (
	"context"

	"github.com/memehub/memehub/internal/core/model"
)

type UserStore interface {
	// CreateUser creates a new user account, or returns ErrDuplicateEmail if
	// the email is already registered
	CreateUser(ctx context.Context, user model.User) error

	// GetUserByID finds a user by its ID, or returns ErrNotFound if not found
	GetUserByID(ctx context.Context, userID model.UserID) (model.User, error)

	// FindUserByEmail finds a user by its email, or returns ErrNotFound
	FindUserByEmail(ctx context.Context, email string) (model.User, error)
}
