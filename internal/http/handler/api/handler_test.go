package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/memehub/memehub/internal/adapter/memory"
	"github.com/memehub/memehub/internal/core/model"
	"github.com/memehub/memehub/internal/core/service"
	"github.com/memehub/memehub/internal/http/flash"
	"github.com/memehub/memehub/internal/http/middleware/authn/session"
	"github.com/pkg/errors"

	httpCtx "github.com/memehub/memehub/internal/http/context"
)

type testEnv struct {
	handler   *Handler
	memeStore *memory.MemeStore
	userStore *memory.UserStore
	accounts  *service.AccountService
}

func createTestEnv(t *testing.T) *testEnv {
	t.Helper()

	sessionStore := sessions.NewCookieStore([]byte("test-signing-key"))
	memeStore := memory.NewMemeStore()
	userStore := memory.NewUserStore()

	feedService := service.NewFeedService(memeStore)
	accounts := service.NewAccountService(userStore)
	catalog := memory.NewTemplateCatalog(memory.DefaultTemplates()...)
	notifier := flash.NewNotifier(sessionStore)

	sessionHandler := session.NewHandler(sessionStore, accounts, userStore, notifier)

	return &testEnv{
		handler:   NewHandler(feedService, accounts, catalog, sessionHandler),
		memeStore: memeStore,
		userStore: userStore,
		accounts:  accounts,
	}
}

func asUser(r *http.Request, user model.User) *http.Request {
	ctx := httpCtx.SetUser(r.Context(), user)
	return r.WithContext(ctx)
}

func TestHandleLogin(t *testing.T) {
	env := createTestEnv(t)

	if _, err := env.accounts.SignUp(context.Background(), "alice@example.net", "s3cret"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	body, err := json.Marshal(LoginRequest{
		Email:    "alice@example.net",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	res := httptest.NewRecorder()

	env.handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%d', got '%d'", e, g)
	}

	var loginRes LoginResponse
	if err := json.NewDecoder(res.Body).Decode(&loginRes); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "alice@example.net", loginRes.User.Email; e != g {
		t.Errorf("loginRes.User.Email: expected '%s', got '%s'", e, g)
	}

	if len(res.Result().Cookies()) == 0 {
		t.Errorf("a session cookie should have been set")
	}
}

func TestHandleLoginInvalidCredentials(t *testing.T) {
	env := createTestEnv(t)

	body, err := json.Marshal(LoginRequest{
		Email:    "eve@example.net",
		Password: "nope",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	res := httptest.NewRecorder()

	env.handler.ServeHTTP(res, req)

	if e, g := http.StatusUnauthorized, res.Code; e != g {
		t.Errorf("res.Code: expected '%d', got '%d'", e, g)
	}
}

func TestHandleCreateMemeAnonymous(t *testing.T) {
	env := createTestEnv(t)

	body, err := json.Marshal(CreateMemeRequest{Content: "no session"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	req := httptest.NewRequest(http.MethodPost, "/memes", bytes.NewReader(body))
	res := httptest.NewRecorder()

	env.handler.ServeHTTP(res, req)

	if e, g := http.StatusForbidden, res.Code; e != g {
		t.Errorf("res.Code: expected '%d', got '%d'", e, g)
	}
}

func TestHandleListMemes(t *testing.T) {
	env := createTestEnv(t)

	user := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", nil)

	for _, c := range []string{"first", "second"} {
		meme := model.NewReadOnlyMeme(model.NewMemeID(), c, user.ID(), user.Email(), 0, time.Time{})
		if _, err := env.memeStore.CreateMeme(context.Background(), meme); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/memes", nil)
	res := httptest.NewRecorder()

	env.handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%d', got '%d'", e, g)
	}

	var listRes ListMemesResponse
	if err := json.NewDecoder(res.Body).Decode(&listRes); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(2), listRes.Total; e != g {
		t.Errorf("listRes.Total: expected '%d', got '%d'", e, g)
	}

	if e, g := "second", listRes.Memes[0].Content; e != g {
		t.Errorf("listRes.Memes[0].Content: expected '%s', got '%s'", e, g)
	}
}

func TestHandleListMemesNegativePagination(t *testing.T) {
	env := createTestEnv(t)

	user := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", nil)

	meme := model.NewReadOnlyMeme(model.NewMemeID(), "still here", user.ID(), user.Email(), 0, time.Time{})
	if _, err := env.memeStore.CreateMeme(context.Background(), meme); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for _, target := range []string{"/memes?page=-1", "/memes?limit=-5", "/memes?page=-1&limit=-5"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		res := httptest.NewRecorder()

		env.handler.ServeHTTP(res, req)

		if e, g := http.StatusOK, res.Code; e != g {
			t.Errorf("%s: res.Code: expected '%d', got '%d'", target, e, g)
		}

		var listRes ListMemesResponse
		if err := json.NewDecoder(res.Body).Decode(&listRes); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := 1, len(listRes.Memes); e != g {
			t.Errorf("%s: len(listRes.Memes): expected '%d', got '%d'", target, e, g)
		}
	}
}

func TestHandleCreateMeme(t *testing.T) {
	env := createTestEnv(t)

	user := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", nil)

	body, err := json.Marshal(CreateMemeRequest{Content: "brand new"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	req := asUser(httptest.NewRequest(http.MethodPost, "/memes", bytes.NewReader(body)), user)
	res := httptest.NewRecorder()

	env.handler.ServeHTTP(res, req)

	if e, g := http.StatusCreated, res.Code; e != g {
		t.Fatalf("res.Code: expected '%d', got '%d'", e, g)
	}

	var createRes CreateMemeResponse
	if err := json.NewDecoder(res.Body).Decode(&createRes); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "brand new", createRes.Meme.Content; e != g {
		t.Errorf("createRes.Meme.Content: expected '%s', got '%s'", e, g)
	}

	if e, g := string(user.ID()), createRes.Meme.UserID; e != g {
		t.Errorf("createRes.Meme.UserID: expected '%s', got '%s'", e, g)
	}
}

func TestHandleListTemplates(t *testing.T) {
	env := createTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/meme-templates", nil)
	res := httptest.NewRecorder()

	env.handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%d', got '%d'", e, g)
	}

	var listRes ListTemplatesResponse
	if err := json.NewDecoder(res.Body).Decode(&listRes); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if len(listRes.Templates) == 0 {
		t.Errorf("the template catalog should not be empty")
	}
}
