package gorm

import (
	"time"

	"github.com/memehub/memehub/internal/core/model"
)

type User struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Email        string `gorm:"uniqueIndex"`
	PasswordHash []byte

	Memes []*Meme `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;"`
}

type wrappedUser struct {
	u *User
}

// ID implements model.User.
func (w *wrappedUser) ID() model.UserID {
	return model.UserID(w.u.ID)
}

// Email implements model.User.
func (w *wrappedUser) Email() string {
	return w.u.Email
}

// PasswordHash implements model.User.
func (w *wrappedUser) PasswordHash() []byte {
	return w.u.PasswordHash
}

var _ model.User = &wrappedUser{}

func fromUser(u model.User) *User {
	return &User{
		ID:           string(u.ID()),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
	}
}
