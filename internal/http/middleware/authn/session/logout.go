package session

import (
	"context"
	"net/http"

	"github.com/memehub/memehub/internal/http/flash"
	"github.com/memehub/memehub/internal/http/handler/webui/common"
	"github.com/pkg/errors"

	httpCtx "github.com/memehub/memehub/internal/http/context"
	httpURL "github.com/memehub/memehub/internal/http/url"
)

func (h *Handler) handleSignOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.clearSession(w, r); err != nil && !errors.Is(err, errSessionNotFound) {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	h.notifier.Notify(w, r, flash.SeveritySuccess, "Signed out successfully!")

	http.Redirect(w, r, loginURL(ctx), http.StatusSeeOther)
}

func loginURL(ctx context.Context) string {
	baseURL := httpCtx.BaseURL(ctx)
	return httpURL.Mutate(baseURL, httpURL.WithPath("/auth/login")).String()
}
