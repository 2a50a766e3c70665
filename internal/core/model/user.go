package model

import (
	"github.com/rs/xid"
)

type UserID string

func NewUserID() UserID {
	return UserID(xid.New().String())
}

type User interface {
	WithID[UserID]

	// Email doubles as the display name and as author attribution on memes.
	Email() string
	PasswordHash() []byte
}

type ReadOnlyUser struct {
	id           UserID
	email        string
	passwordHash []byte
}

// ID implements User.
func (u *ReadOnlyUser) ID() UserID {
	return u.id
}

// Email implements User.
func (u *ReadOnlyUser) Email() string {
	return u.email
}

// PasswordHash implements User.
func (u *ReadOnlyUser) PasswordHash() []byte {
	return u.passwordHash
}

var _ User = &ReadOnlyUser{}

func NewReadOnlyUser(id UserID, email string, passwordHash []byte) *ReadOnlyUser {
	return &ReadOnlyUser{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
	}
}
