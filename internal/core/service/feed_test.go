package service

import (
	"context"
	"testing"

	"github.com/memehub/memehub/internal/adapter/memory"
	"github.com/memehub/memehub/internal/core/model"
	"github.com/memehub/memehub/internal/core/port"
	"github.com/pkg/errors"
)

func TestFeedServiceCreateMeme(t *testing.T) {
	ctx := context.Background()

	store := memory.NewMemeStore()
	feed := NewFeedService(store)

	user := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", nil)

	meme, err := feed.CreateMeme(ctx, user, "When the build passes on the first try")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "When the build passes on the first try", meme.Content(); e != g {
		t.Errorf("meme.Content(): expected '%s', got '%s'", e, g)
	}

	if e, g := user.ID(), meme.OwnerID(); e != g {
		t.Errorf("meme.OwnerID(): expected '%s', got '%s'", e, g)
	}

	if e, g := user.Email(), meme.Author(); e != g {
		t.Errorf("meme.Author(): expected '%s', got '%s'", e, g)
	}

	if e, g := int64(0), meme.Likes(); e != g {
		t.Errorf("meme.Likes(): expected '%d', got '%d'", e, g)
	}

	if meme.CreatedAt().IsZero() {
		t.Errorf("meme.CreatedAt() should not be zero")
	}
}

func TestFeedServiceCreateMemeValidation(t *testing.T) {
	type testCase struct {
		Name        string
		User        model.User
		Content     string
		ExpectedErr error
	}

	user := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", nil)

	testCases := []testCase{
		{
			Name:        "anonymous",
			User:        nil,
			Content:     "some content",
			ExpectedErr: ErrAuthRequired,
		},
		{
			Name:        "empty content",
			User:        user,
			Content:     "",
			ExpectedErr: ErrEmptyContent,
		},
		{
			Name:        "whitespace only content",
			User:        user,
			Content:     "   \n\t  ",
			ExpectedErr: ErrEmptyContent,
		},
	}

	ctx := context.Background()

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store := memory.NewMemeStore()
			feed := NewFeedService(store)

			if _, err := feed.CreateMeme(ctx, tc.User, tc.Content); !errors.Is(err, tc.ExpectedErr) {
				t.Errorf("err: expected '%v', got '%v'", tc.ExpectedErr, err)
			}

			total, err := store.CountMemes(ctx)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := int64(0), total; e != g {
				t.Errorf("store.CountMemes(): expected '%d', got '%d'", e, g)
			}
		})
	}
}

func TestFeedServiceLikeMeme(t *testing.T) {
	ctx := context.Background()

	store := memory.NewMemeStore()
	feed := NewFeedService(store)

	user := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", nil)

	meme, err := feed.CreateMeme(ctx, user, "such meme")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := feed.LikeMeme(ctx, nil, meme.ID()); !errors.Is(err, ErrAuthRequired) {
		t.Errorf("err: expected '%v', got '%v'", ErrAuthRequired, err)
	}

	for range 3 {
		if err := feed.LikeMeme(ctx, user, meme.ID()); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	liked, err := store.GetMemeByID(ctx, meme.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(3), liked.Likes(); e != g {
		t.Errorf("liked.Likes(): expected '%d', got '%d'", e, g)
	}

	if err := feed.LikeMeme(ctx, user, model.NewMemeID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected '%v', got '%v'", port.ErrNotFound, err)
	}
}

func TestFeedServiceDeleteMeme(t *testing.T) {
	ctx := context.Background()

	store := memory.NewMemeStore()
	feed := NewFeedService(store)

	alice := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", nil)
	bob := model.NewReadOnlyUser(model.NewUserID(), "bob@example.net", nil)

	meme, err := feed.CreateMeme(ctx, alice, "only alice may delete this")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := feed.DeleteMeme(ctx, bob, meme.ID()); !errors.Is(err, ErrNotOwner) {
		t.Errorf("err: expected '%v', got '%v'", ErrNotOwner, err)
	}

	if err := feed.DeleteMeme(ctx, alice, meme.ID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.GetMemeByID(ctx, meme.ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected '%v', got '%v'", port.ErrNotFound, err)
	}

	if err := feed.DeleteMeme(ctx, alice, meme.ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected '%v', got '%v'", port.ErrNotFound, err)
	}
}

func TestFeedServiceLoadFeedOrder(t *testing.T) {
	ctx := context.Background()

	store := memory.NewMemeStore()
	feed := NewFeedService(store)

	user := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", nil)

	contents := []string{"first", "second", "third"}
	for _, c := range contents {
		if _, err := feed.CreateMeme(ctx, user, c); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	memes, total, err := feed.LoadFeed(ctx, port.QueryMemesOptions{})
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
