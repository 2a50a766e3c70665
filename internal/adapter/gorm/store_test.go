package gorm

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/memehub/memehub/internal/core/model"
	"github.com/memehub/memehub/internal/core/port"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	_ "github.com/ncruces/go-sqlite3/embed"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB, err := db.DB()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB.SetMaxOpenConns(1)

	return NewStore(db)
}

func createTestUser(t *testing.T, store *Store, email string) model.User {
	t.Helper()

	user := model.NewReadOnlyUser(model.NewUserID(), email, []byte("hash"))

	// Memes reference their owner; the foreign key is enforced
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return user
}

func TestStoreMemeLifecycle(t *testing.T) {
	ctx := context.Background()

	store := createTestStore(t)

	owner := createTestUser(t, store, "alice@example.net")
	ownerID := owner.ID()

	meme := model.NewReadOnlyMeme(model.NewMemeID(), "hello from sqlite", ownerID, "alice@example.net", 0, time.Time{})

	created, err := store.CreateMeme(ctx, meme)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if created.CreatedAt().IsZero() {
		t.Errorf("created.CreatedAt() should not be zero")
	}

	found, err := store.GetMemeByID(ctx, meme.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "hello from sqlite", found.Content(); e != g {
		t.Errorf("found.Content(): expected '%s', got '%s'", e, g)
	}

	if e, g := ownerID, found.OwnerID(); e != g {
		t.Errorf("found.OwnerID(): expected '%s', got '%s'", e, g)
	}

	for range 2 {
		if err := store.IncrementLikes(ctx, meme.ID()); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	liked, err := store.GetMemeByID(ctx, meme.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(2), liked.Likes(); e != g {
		t.Errorf("liked.Likes(): expected '%d', got '%d'", e, g)
	}

	if err := store.DeleteMeme(ctx, meme.ID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.GetMemeByID(ctx, meme.ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected '%v', got '%v'", port.ErrNotFound, err)
	}
}

func TestStoreIncrementLikesNotFound(t *testing.T) {
	ctx := context.Background()

	store := createTestStore(t)

	if err := store.IncrementLikes(ctx, model.NewMemeID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected '%v', got '%v'", port.ErrNotFound, err)
	}
}

func TestStoreQueryMemesOrder(t *testing.T) {
	ctx := context.Background()

	store := createTestStore(t)

	owner := createTestUser(t, store, "alice@example.net")
	ownerID := owner.ID()

	for _, c := range []string{"first", "second", "third"} {
		meme := model.NewReadOnlyMeme(model.NewMemeID(), c, ownerID, "alice@example.net", 0, time.Time{})
		if _, err := store.CreateMeme(ctx, meme); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		// Distinct creation timestamps keep the expected order unambiguous
		time.Sleep(5 * time.Millisecond)
	}

	memes, total, err := store.QueryMemes(ctx, port.QueryMemesOptions{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(3), total; e != g {
		t.Errorf("total: expected '%d', got '%d'", e, g)
	}

	expected := []string{"third", "second", "first"}
	for i, m := range memes {
		if e, g := expected[i], m.Content(); e != g {
			t.Errorf("memes[%d].Content(): expected '%s', got '%s'", i, e, g)
		}
	}
}

func TestStoreUserStore(t *testing.T) {
	ctx := context.Background()

	store := createTestStore(t)

	user := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", []byte("hash"))

	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	duplicate := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", []byte("other"))

	if err := store.CreateUser(ctx, duplicate); !errors.Is(err, port.ErrDuplicateEmail) {
		t.Errorf("err: expected '%v', got '%v'", port.ErrDuplicateEmail, err)
	}

	found, err := store.FindUserByEmail(ctx, "alice@example.net")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := user.ID(), found.ID(); e != g {
		t.Errorf("found.ID(): expected '%s', got '%s'", e, g)
	}

	byID, err := store.GetUserByID(ctx, user.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "alice@example.net", byID.Email(); e != g {
		t.Errorf("byID.Email(): expected '%s', got '%s'", e, g)
	}

	if _, err := store.GetUserByID(ctx, model.NewUserID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected '%v', got '%v'", port.ErrNotFound, err)
	}
}
