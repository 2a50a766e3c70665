package service

import (
	"context"
	"testing"

	"github.com/memehub/memehub/internal/adapter/memory"
	"github.com/memehub/memehub/internal/core/port"
	"github.com/pkg/errors"
)

func TestAccountServiceSignUpAndSignIn(t *testing.T) {
	ctx := context.Background()

	store := memory.NewUserStore()
	accounts := NewAccountService(store)

	user, err := accounts.SignUp(ctx, "alice@example.net", "s3cret")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "alice@example.net", user.Email(); e != g {
		t.Errorf("user.Email(): expected '%s', got '%s'", e, g)
	}

	signedIn, err := accounts.SignIn(ctx, "alice@example.net", "s3cret")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := user.ID(), signedIn.ID(); e != g {
		t.Errorf("signedIn.ID(): expected '%s', got '%s'", e, g)
	}
}

func TestAccountServiceSignUpDuplicateEmail(t *testing.T) {
	ctx := context.Background()

	store := memory.NewUserStore()
	accounts := NewAccountService(store)

	if _, err := accounts.SignUp(ctx, "alice@example.net", "s3cret"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := accounts.SignUp(ctx, "alice@example.net", "other"); !errors.Is(err, port.ErrDuplicateEmail) {
		t.Errorf("err: expected '%v', got '%v'", port.ErrDuplicateEmail, err)
	}
}

func TestAccountServiceSignInInvalidCredentials(t *testing.T) {
	type testCase struct {
		Name     string
		Email    string
		Password string
		Expected error
	}

	testCases := []testCase{
		{
			Name:     "wrong password",
			Email:    "alice@example.net",
			Password: "nope",
			Expected: ErrInvalidCredentials,
		},
		{
			Name:     "unknown email",
			Email:    "eve@example.net",
			Password: "s3cret",
			Expected: ErrInvalidCredentials,
		},
		{
			Name:     "missing email",
			Email:    "",
			Password: "s3cret",
			Expected: ErrMissingCredentials,
		},
		{
			Name:     "missing password",
			Email:    "alice@example.net",
			Password: "",
			Expected: ErrMissingCredentials,
		},
	}

	ctx := context.Background()

	store := memory.NewUserStore()
	accounts := NewAccountService(store)

	if _, err := accounts.SignUp(ctx, "alice@example.net", "s3cret"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if _, err := accounts.SignIn(ctx, tc.Email, tc.Password); !errors.Is(err, tc.Expected) {
				t.Errorf("err: expected '%v', got '%v'", tc.Expected, err)
			}
		})
	}
}
