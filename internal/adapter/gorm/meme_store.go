package gorm

import (
	"context"

	"github.com/memehub/memehub/internal/core/model"
	"github.com/memehub/memehub/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateMeme implements port.MemeStore.
func (s *Store) CreateMeme(ctx context.Context, meme model.Meme) (model.Meme, error) {
	row := fromMeme(meme)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		// CreatedAt is left zero so that the store assigns it on insert
		if err := db.Create(row).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedMeme{row}, nil
}

// GetMemeByID implements port.MemeStore.
func (s *Store) GetMemeByID(ctx context.Context, id model.MemeID) (model.Meme, error) {
	var meme Meme

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&meme, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedMeme{&meme}, nil
}

// IncrementLikes implements port.MemeStore.
func (s *Store) IncrementLikes(ctx context.Context, id model.MemeID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		// The increment happens database-side so concurrent likes never
		// read-modify-write each other away
		res := db.Model(&Meme{}).
			Where("id = ?", string(id)).
			UpdateColumn("likes", gorm.Expr("likes + ?", 1))
		if res.Error != nil {
			return errors.WithStack(res.Error)
		}

		if res.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteMeme implements port.MemeStore.
func (s *Store) DeleteMeme(ctx context.Context, id model.MemeID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		res := db.Delete(&Meme{}, "id = ?", string(id))
		if res.Error != nil {
			return errors.WithStack(res.Error)
		}

		if res.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// QueryMemes implements port.MemeStore.
func (s *Store) QueryMemes(ctx context.Context, opts port.QueryMemesOptions) ([]model.Meme, int64, error) {
	var (
		rows  []*Meme
		total int64
	)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Model(&Meme{}).Count(&total).Error; err != nil {
			return errors.WithStack(err)
		}

		query := db.Model(&Meme{}).Order("created_at desc, id desc")

		if opts.Limit != nil {
			query = query.Limit(*opts.Limit)
		}

		if opts.Page != nil && opts.Limit != nil {
			query = query.Offset(*opts.Page * *opts.Limit)
		}

		if err := query.Find(&rows).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	memes := make([]model.Meme, 0, len(rows))
	for _, r := range rows {
		memes = append(memes, &wrappedMeme{r})
	}

	return memes, total, nil
}

// CountMemes implements port.MemeStore.
func (s *Store) CountMemes(ctx context.Context) (int64, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	var total int64

	if err := db.Model(&Meme{}).Count(&total).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return total, nil
}

var _ port.MemeStore = &Store{}
