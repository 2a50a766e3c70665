package model

import (
	"time"

	"github.com/rs/xid"
)

type MemeID string

func NewMemeID() MemeID {
	return MemeID(xid.New().String())
}

type Meme interface {
	WithID[MemeID]
	WithLifecycle

	Content() string

	// OwnerID and Author are set at creation time and immutable afterwards.
	// Author is the denormalized email of the owner.
	OwnerID() UserID
	Author() string

	Likes() int64
}

type ReadOnlyMeme struct {
	id        MemeID
	content   string
	ownerID   UserID
	author    string
	likes     int64
	createdAt time.Time
}

// ID implements Meme.
func (m *ReadOnlyMeme) ID() MemeID {
	return m.id
}

// Content implements Meme.
func (m *ReadOnlyMeme) Content() string {
	return m.content
}

// OwnerID implements Meme.
func (m *ReadOnlyMeme) OwnerID() UserID {
	return m.ownerID
}

// Author implements Meme.
func (m *ReadOnlyMeme) Author() string {
	return m.author
}

// Likes implements Meme.
func (m *ReadOnlyMeme) Likes() int64 {
	return m.likes
}

// CreatedAt implements Meme.
func (m *ReadOnlyMeme) CreatedAt() time.Time {
	return m.createdAt
}

var _ Meme = &ReadOnlyMeme{}

func NewReadOnlyMeme(id MemeID, content string, ownerID UserID, author string, likes int64, createdAt time.Time) *ReadOnlyMeme {
	return &ReadOnlyMeme{
		id:        id,
		content:   content,
		ownerID:   ownerID,
		author:    author,
		likes:     likes,
		createdAt: createdAt,
	}
}
