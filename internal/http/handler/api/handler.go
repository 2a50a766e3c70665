package api

import (
	"net/http"

	"github.com/memehub/memehub/internal/core/port"
	"github.com/memehub/memehub/internal/core/service"
	"github.com/memehub/memehub/internal/http/middleware/authn/session"
	"github.com/memehub/memehub/internal/http/middleware/authz"
)

type Handler struct {
	feed     *service.FeedService
	accounts *service.AccountService
	catalog  port.TemplateCatalog
	session  *session.Handler
	mux      *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(feed *service.FeedService, accounts *service.AccountService, catalog port.TemplateCatalog, sessionHandler *session.Handler) *Handler {
	h := &Handler{
		feed:     feed,
		accounts: accounts,
		catalog:  catalog,
		session:  sessionHandler,
		mux:      &http.ServeMux{},
	}

	assertUser := authz.Middleware(nil, authz.IsAuthenticated)

	h.mux.Handle("POST /login", http.HandlerFunc(h.handleLogin))

	h.mux.Handle("GET /memes", http.HandlerFunc(h.handleListMemes))
	h.mux.Handle("POST /memes", assertUser(http.HandlerFunc(h.handleCreateMeme)))
	h.mux.Handle("POST /memes/{memeID}/like", assertUser(http.HandlerFunc(h.handleLikeMeme)))
	h.mux.Handle("DELETE /memes/{memeID}", assertUser(http.HandlerFunc(h.handleDeleteMeme)))

	h.mux.Handle("GET /meme-templates", http.HandlerFunc(h.handleListTemplates))

	return h
}

var _ http.Handler = &Handler{}
