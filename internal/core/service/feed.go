package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/memehub/memehub/internal/core/model"
	"github.com/memehub/memehub/internal/core/port"
	"github.com/memehub/memehub/internal/metrics"
	"github.com/pkg/errors"
)

var (
	ErrEmptyContent = errors.New("empty content")
	ErrAuthRequired = errors.New("authentication required")
	ErrNotOwner     = errors.New("not the owner")
)

// FeedService implements the meme feed operations: create, like, delete and
// load. Every mutation is followed by a full reload of the feed by the
// caller; the service itself keeps no state between calls.
type FeedService struct {
	memeStore port.MemeStore
}

// CreateMeme creates a new meme owned by the given user. The content must be
// non-empty once trimmed; validation happens before any store access.
func (s *FeedService) CreateMeme(ctx context.Context, user model.User, content string) (model.Meme, error) {
	if user == nil {
		return nil, errors.WithStack(ErrAuthRequired)
	}

	if strings.TrimSpace(content) == "" {
		return nil, errors.WithStack(ErrEmptyContent)
	}

	meme := model.NewReadOnlyMeme(model.NewMemeID(), content, user.ID(), user.Email(), 0, time.Time{})

	created, err := s.memeStore.CreateMeme(ctx, meme)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TotalMemesCreated.Inc()

	slog.InfoContext(ctx, "meme created",
		slog.String("meme_id", string(created.ID())),
		slog.String("user_id", string(user.ID())))

	return created, nil
}

// LikeMeme increments the like counter of a meme by exactly one. The
// increment is delegated to the store's atomic primitive so concurrent likes
// converge.
func (s *FeedService) LikeMeme(ctx context.Context, user model.User, id model.MemeID) error {
	if user == nil {
		return errors.WithStack(ErrAuthRequired)
	}

	if err := s.memeStore.IncrementLikes(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	metrics.TotalLikes.Inc()

	return nil
}

// DeleteMeme deletes a meme owned by the given user. Ownership is enforced
// here, not in the rendering layer.
func (s *FeedService) DeleteMeme(ctx context.Context, user model.User, id model.MemeID) error {
	if user == nil {
		return errors.WithStack(ErrAuthRequired)
	}

	meme, err := s.memeStore.GetMemeByID(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	if meme.OwnerID() != user.ID() {
		return errors.WithStack(ErrNotOwner)
	}

	if err := s.memeStore.DeleteMeme(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	metrics.TotalMemesDeleted.Inc()

	slog.InfoContext(ctx, "meme deleted",
		slog.String("meme_id", string(id)),
		slog.String("user_id", string(user.ID())))

	return nil
}

// LoadFeed returns the full feed, newest first.
func (s *FeedService) LoadFeed(ctx context.Context, opts port.QueryMemesOptions) ([]model.Meme, int64, error) {
	memes, total, err := s.memeStore.QueryMemes(ctx, opts)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return memes, total, nil
}

func NewFeedService(memeStore port.MemeStore) *FeedService {
	return &FeedService{
		memeStore: memeStore,
	}
}
