package templates

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/memehub/memehub/internal/http/handler/webui/common"
	"github.com/memehub/memehub/internal/http/handler/webui/templates/component"
	"github.com/pkg/errors"

	httpCtx "github.com/memehub/memehub/internal/http/context"
)

func (h *Handler) getTemplateListPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	templates, err := h.catalog.ListTemplates(ctx)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel := component.TemplateListPageVModel{
		User:      httpCtx.User(ctx),
		Templates: templates,
	}

	listPage := component.TemplateListPage(vmodel)

	templ.Handler(listPage).ServeHTTP(w, r)
}
