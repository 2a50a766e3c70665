package port

import (
	"context"

	"github.com/memehub/memehub/internal/core/model"
)

type MemeStore interface {
	// CreateMeme persists a new meme. The creation timestamp is assigned by
	// the store, not the caller.
	CreateMeme(ctx context.Context, meme model.Meme) (model.Meme, error)

	// GetMemeByID finds a meme by its ID, or returns ErrNotFound
	GetMemeByID(ctx context.Context, id model.MemeID) (model.Meme, error)

	// IncrementLikes atomically increments the like counter of a meme by
	// exactly one. Implementations must perform the increment store-side so
	// concurrent likes never lose updates.
	IncrementLikes(ctx context.Context, id model.MemeID) error

	// DeleteMeme deletes a meme by its ID. Deleting an absent meme returns
	// ErrNotFound
	DeleteMeme(ctx context.Context, id model.MemeID) error

	// QueryMemes returns memes ordered by creation date, newest first
	QueryMemes(ctx context.Context, opts QueryMemesOptions) ([]model.Meme, int64, error)

	CountMemes(ctx context.Context) (int64, error)
}

type QueryMemesOptions struct {
	Page  *int
	Limit *int
}
