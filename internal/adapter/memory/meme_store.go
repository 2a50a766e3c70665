package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/memehub/memehub/internal/core/model"
	"github.com/memehub/memehub/internal/core/port"
	"github.com/pkg/errors"
)

type memeRow struct {
	id        model.MemeID
	content   string
	ownerID   model.UserID
	author    string
	likes     int64
	createdAt time.Time
	seq       uint64
}

// MemeStore is an in-memory port.MemeStore, used by tests.
type MemeStore struct {
	mu    sync.RWMutex
	memes map[model.MemeID]*memeRow
	seq   uint64
}

// CreateMeme implements port.MemeStore.
func (s *MemeStore) CreateMeme(ctx context.Context, meme model.Meme) (model.Meme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++

	row := &memeRow{
		id:        meme.ID(),
		content:   meme.Content(),
		ownerID:   meme.OwnerID(),
		author:    meme.Author(),
		likes:     meme.Likes(),
		createdAt: time.Now(),
		seq:       s.seq,
	}

	s.memes[row.id] = row

	return asMeme(row), nil
}

// GetMemeByID implements port.MemeStore.
func (s *MemeStore) GetMemeByID(ctx context.Context, id model.MemeID) (model.Meme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, exists := s.memes[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return asMeme(row), nil
}

// IncrementLikes implements port.MemeStore.
func (s *MemeStore) IncrementLikes(ctx context.Context, id model.MemeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, exists := s.memes[id]
	if !exists {
		return errors.WithStack(port.ErrNotFound)
	}

	row.likes++

	return nil
}

// DeleteMeme implements port.MemeStore.
func (s *MemeStore) DeleteMeme(ctx context.Context, id model.MemeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.memes[id]; !exists {
		return errors.WithStack(port.ErrNotFound)
	}

	delete(s.memes, id)

	return nil
}

// QueryMemes implements port.MemeStore.
func (s *MemeStore) QueryMemes(ctx context.Context, opts port.QueryMemesOptions) ([]model.Meme, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]*memeRow, 0, len(s.memes))
	for _, row := range s.memes {
		rows = append(rows, row)
	}

	// Newest first, insertion order as tie-break
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].createdAt.Equal(rows[j].createdAt) {
			return rows[i].seq > rows[j].seq
		}

		return rows[i].createdAt.After(rows[j].createdAt)
	})

	total := int64(len(rows))

	// Negative page or limit values behave as if unset, like the sql adapter
	if opts.Page != nil && opts.Limit != nil {
		offset := *opts.Page * *opts.Limit
		if offset < 0 {
			offset = 0
		}
		if offset > len(rows) {
			offset = len(rows)
		}

		rows = rows[offset:]
	}

	if opts.Limit != nil && *opts.Limit >= 0 && len(rows) > *opts.Limit {
		rows = rows[:*opts.Limit]
	}

	memes := make([]model.Meme, 0, len(rows))
	for _, row := range rows {
		memes = append(memes, asMeme(row))
	}

	return memes, total, nil
}

// CountMemes implements port.MemeStore.
func (s *MemeStore) CountMemes(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.memes)), nil
}

func asMeme(row *memeRow) model.Meme {
	return model.NewReadOnlyMeme(row.id, row.content, row.ownerID, row.author, row.likes, row.createdAt)
}

func NewMemeStore() *MemeStore {
	return &MemeStore{
		memes: map[model.MemeID]*memeRow{},
	}
}

var _ port.MemeStore = &MemeStore{}
