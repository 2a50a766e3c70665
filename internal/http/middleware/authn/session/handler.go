package session

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/memehub/memehub/internal/core/port"
	"github.com/memehub/memehub/internal/core/service"
	"github.com/memehub/memehub/internal/http/flash"
)

type Handler struct {
	mux          *http.ServeMux
	sessionStore sessions.Store
	sessionName  string
	accounts     *service.AccountService
	userStore    port.UserStore
	notifier     *flash.Notifier
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(sessionStore sessions.Store, accounts *service.AccountService, userStore port.UserStore, notifier *flash.Notifier, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)
	h := &Handler{
		mux:          http.NewServeMux(),
		sessionStore: sessionStore,
		sessionName:  opts.SessionName,
		accounts:     accounts,
		userStore:    userStore,
		notifier:     notifier,
	}

	h.mux.HandleFunc("GET /login", h.getLoginPage)
	h.mux.HandleFunc("POST /login", h.handleSignIn)
	h.mux.HandleFunc("POST /signup", h.handleSignUp)
	h.mux.HandleFunc("POST /logout", h.handleSignOut)

	return h
}

var _ http.Handler = &Handler{}
