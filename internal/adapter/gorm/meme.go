package gorm

import (
	"time"

	"github.com/memehub/memehub/internal/core/model"
)

type Meme struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Content string `gorm:"not null"`

	Owner   *User
	OwnerID string `gorm:"index"`

	// Author is the owner's email frozen at creation time.
	Author string

	Likes int64 `gorm:"not null;default:0"`
}

type wrappedMeme struct {
	m *Meme
}

// ID implements model.Meme.
func (w *wrappedMeme) ID() model.MemeID {
	return model.MemeID(w.m.ID)
}

// Content implements model.Meme.
func (w *wrappedMeme) Content() string {
	return w.m.Content
}

// OwnerID implements model.Meme.
func (w *wrappedMeme) OwnerID() model.UserID {
	return model.UserID(w.m.OwnerID)
}

// Author implements model.Meme.
func (w *wrappedMeme) Author() string {
	return w.m.Author
}

// Likes implements model.Meme.
func (w *wrappedMeme) Likes() int64 {
	return w.m.Likes
}

// CreatedAt implements model.Meme.
func (w *wrappedMeme) CreatedAt() time.Time {
	return w.m.CreatedAt
}

var _ model.Meme = &wrappedMeme{}

func fromMeme(m model.Meme) *Meme {
	return &Meme{
		ID:      string(m.ID()),
		Content: m.Content(),
		OwnerID: string(m.OwnerID()),
		Author:  m.Author(),
		Likes:   m.Likes(),
	}
}
