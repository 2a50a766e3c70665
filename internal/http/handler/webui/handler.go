package webui

import (
	"net/http"
	"strings"

	"github.com/memehub/memehub/internal/core/port"
	"github.com/memehub/memehub/internal/core/service"
	"github.com/memehub/memehub/internal/http/flash"
	commonComp "github.com/memehub/memehub/internal/http/handler/webui/common/component"
	"github.com/memehub/memehub/internal/http/handler/webui/feed"
	"github.com/memehub/memehub/internal/http/handler/webui/templates"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(feedService *service.FeedService, catalog port.TemplateCatalog, notifier *flash.Notifier, ads commonComp.AdsVModel) *Handler {
	h := &Handler{
		mux: http.NewServeMux(),
	}

	mount(h.mux, "/", feed.NewHandler(feedService, notifier, feed.WithAds(ads)))
	mount(h.mux, "/templates/", templates.NewHandler(catalog))

	return h
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}
