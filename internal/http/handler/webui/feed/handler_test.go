package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/memehub/memehub/internal/adapter/memory"
	"github.com/memehub/memehub/internal/core/model"
	"github.com/memehub/memehub/internal/core/service"
	"github.com/memehub/memehub/internal/http/flash"
	"github.com/pkg/errors"

	httpCtx "github.com/memehub/memehub/internal/http/context"
)

func createTestHandler(t *testing.T) (*Handler, *memory.MemeStore) {
	t.Helper()

	store := memory.NewMemeStore()
	feedService := service.NewFeedService(store)
	notifier := flash.NewNotifier(sessions.NewCookieStore([]byte("test-signing-key")))

	return NewHandler(feedService, notifier), store
}

func asUser(r *http.Request, user model.User) *http.Request {
	ctx := httpCtx.SetUser(r.Context(), user)
	return r.WithContext(ctx)
}

func TestGetFeedPageAnonymousRedirect(t *testing.T) {
	handler, _ := createTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Errorf("res.Code: expected '%d', got '%d'", e, g)
	}

	if e, g := "/auth/login", res.Header().Get("Location"); e != g {
		t.Errorf("Location: expected '%s', got '%s'", e, g)
	}
}

func TestGetFeedPageEscapesContent(t *testing.T) {
	handler, store := createTestHandler(t)

	user := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", nil)

	meme := model.NewReadOnlyMeme(model.NewMemeID(), `<script>alert("pwned")</script>`, user.ID(), user.Email(), 0, time.Time{})
	if _, err := store.CreateMeme(context.Background(), meme); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	req := asUser(httptest.NewRequest(http.MethodGet, "/", nil), user)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%d', got '%d'", e, g)
	}

	body := res.Body.String()

	if strings.Contains(body, `<script>alert("pwned")</script>`) {
		t.Errorf("body should not contain the raw meme content")
	}

	if !strings.Contains(body, "&lt;script&gt;") {
		t.Errorf("body should contain the escaped meme content")
	}
}

func TestGetFeedPageEmptyState(t *testing.T) {
	handler, _ := createTestHandler(t)

	user := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", nil)

	req := asUser(httptest.NewRequest(http.MethodGet, "/", nil), user)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%d', got '%d'", e, g)
	}

	if !strings.Contains(res.Body.String(), "No memes yet. Be the first to post!") {
		t.Errorf("body should contain the empty state message")
	}
}

func TestGetFeedPageDescendingOrder(t *testing.T) {
	handler, store := createTestHandler(t)

	user := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", nil)

	for _, c := range []string{"oldest meme", "middle meme", "newest meme"} {
		meme := model.NewReadOnlyMeme(model.NewMemeID(), c, user.ID(), user.Email(), 0, time.Time{})
		if _, err := store.CreateMeme(context.Background(), meme); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	req := asUser(httptest.NewRequest(http.MethodGet, "/", nil), user)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%d', got '%d'", e, g)
	}

	body := res.Body.String()

	newest := strings.Index(body, "newest meme")
	middle := strings.Index(body, "middle meme")
	oldest := strings.Index(body, "oldest meme")

	if newest == -1 || middle == -1 || oldest == -1 {
		t.Fatalf("all memes should be rendered")
	}

	if !(newest < middle && middle < oldest) {
		t.Errorf("memes should render newest first, got positions %d, %d, %d", newest, middle, oldest)
	}
}

func TestHandleMemeCreate(t *testing.T) {
	handler, store := createTestHandler(t)

	user := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", nil)

	form := url.Values{}
	form.Set("content", "fresh meme")

	req := asUser(httptest.NewRequest(http.MethodPost, "/memes", strings.NewReader(form.Encode())), user)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Errorf("res.Code: expected '%d', got '%d'", e, g)
	}

	total, err := store.CountMemes(context.Background())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(1), total; e != g {
		t.Errorf("store.CountMemes(): expected '%d', got '%d'", e, g)
	}
}

func TestHandleMemeCreateEmptyContent(t *testing.T) {
	handler, store := createTestHandler(t)

	user := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", nil)

	form := url.Values{}
	form.Set("content", "   ")

	req := asUser(httptest.NewRequest(http.MethodPost, "/memes", strings.NewReader(form.Encode())), user)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	// The handler notifies and goes back to the feed instead of failing
	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Errorf("res.Code: expected '%d', got '%d'", e, g)
	}

	total, err := store.CountMemes(context.Background())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(0), total; e != g {
		t.Errorf("store.CountMemes(): expected '%d', got '%d'", e, g)
	}
}

func TestHandleMemeDeleteNotOwner(t *testing.T) {
	handler, store := createTestHandler(t)

	alice := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", nil)
	bob := model.NewReadOnlyUser(model.NewUserID(), "bob@example.net", nil)

	meme := model.NewReadOnlyMeme(model.NewMemeID(), "hands off", alice.ID(), alice.Email(), 0, time.Time{})
	if _, err := store.CreateMeme(context.Background(), meme); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	req := asUser(httptest.NewRequest(http.MethodPost, "/memes/"+string(meme.ID())+"/delete", nil), bob)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusForbidden, res.Code; e != g {
		t.Errorf("res.Code: expected '%d', got '%d'", e, g)
	}

	if _, err := store.GetMemeByID(context.Background(), meme.ID()); err != nil {
		t.Errorf("the meme should still exist: %+v", errors.WithStack(err))
	}
}
