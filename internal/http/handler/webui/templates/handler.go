package templates

import (
	"net/http"

	"github.com/memehub/memehub/internal/core/port"
	"github.com/memehub/memehub/internal/http/middleware/authz"
)

type Handler struct {
	mux     *http.ServeMux
	catalog port.TemplateCatalog
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(catalog port.TemplateCatalog) *Handler {
	h := &Handler{
		mux:     http.NewServeMux(),
		catalog: catalog,
	}

	assertUser := authz.Middleware(nil, authz.IsAuthenticated)

	h.mux.Handle("GET /", assertUser(http.HandlerFunc(h.getTemplateListPage)))

	return h
}

var _ http.Handler = &Handler{}
