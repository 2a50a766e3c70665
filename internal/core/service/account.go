package service

import (
	"context"
	"log/slog"

	"github.com/memehub/memehub/internal/core/model"
	"github.com/memehub/memehub/internal/core/port"
	"github.com/memehub/memehub/internal/metrics"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AccountService owns account creation and credential verification. Session
// lifecycle lives in the HTTP layer; the service only answers "who is this".
type AccountService struct {
	userStore port.UserStore
}

// SignUp creates a new account. Email and password must both be non-empty;
// no further format validation is applied.
func (s *AccountService) SignUp(ctx context.Context, email, password string) (model.User, error) {
	if email == "" || password == "" {
		return nil, errors.WithStack(ErrMissingCredentials)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	user := model.NewReadOnlyUser(model.NewUserID(), email, hash)

	if err := s.userStore.CreateUser(ctx, user); err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TotalSignUps.Inc()

	slog.InfoContext(ctx, "account created", slog.String("user_id", string(user.ID())))

	return user, nil
}

// SignIn verifies the given credentials and returns the matching user, or
// ErrInvalidCredentials. An unknown email and a wrong password are
// indistinguishable to the caller.
func (s *AccountService) SignIn(ctx context.Context, email, password string) (model.User, error) {
	if email == "" || password == "" {
		return nil, errors.WithStack(ErrMissingCredentials)
	}

	user, err := s.userStore.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(ErrInvalidCredentials)
		}

		return nil, errors.WithStack(err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash(), []byte(password)); err != nil {
		return nil, errors.WithStack(ErrInvalidCredentials)
	}

	metrics.TotalSignIns.Inc()

	return user, nil
}

func NewAccountService(userStore port.UserStore) *AccountService {
	return &AccountService{
		userStore: userStore,
	}
}
