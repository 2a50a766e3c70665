package feed

import (
	"net/http"

	"github.com/memehub/memehub/internal/core/service"
	"github.com/memehub/memehub/internal/http/flash"
	commonComp "github.com/memehub/memehub/internal/http/handler/webui/common/component"
	"github.com/memehub/memehub/internal/http/middleware/authz"

	httpCtx "github.com/memehub/memehub/internal/http/context"
	httpURL "github.com/memehub/memehub/internal/http/url"
)

type Handler struct {
	mux      *http.ServeMux
	feed     *service.FeedService
	notifier *flash.Notifier
	ads      commonComp.AdsVModel
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(feed *service.FeedService, notifier *flash.Notifier, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:      http.NewServeMux(),
		feed:     feed,
		notifier: notifier,
		ads:      opts.Ads,
	}

	// Anonymous visitors see the auth form instead of the feed
	assertUser := authz.Middleware(http.HandlerFunc(h.redirectToLogin), authz.IsAuthenticated)

	h.mux.Handle("GET /{$}", assertUser(http.HandlerFunc(h.getFeedPage)))
	h.mux.Handle("POST /memes", assertUser(http.HandlerFunc(h.handleMemeCreate)))
	h.mux.Handle("POST /memes/{id}/like", assertUser(http.HandlerFunc(h.handleMemeLike)))
	h.mux.Handle("POST /memes/{id}/delete", assertUser(http.HandlerFunc(h.handleMemeDelete)))

	return h
}

func (h *Handler) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	loginURL := httpURL.Mutate(httpCtx.BaseURL(ctx), httpURL.WithPath("/auth/login"))

	http.Redirect(w, r, loginURL.String(), http.StatusSeeOther)
}

var _ http.Handler = &Handler{}
