package feed

import (
	"net/http"

	"github.com/memehub/memehub/internal/core/service"
	"github.com/memehub/memehub/internal/http/flash"
	"github.com/memehub/memehub/internal/http/handler/webui/common"
	"github.com/pkg/errors"

	httpCtx "github.com/memehub/memehub/internal/http/context"
)

func (h *Handler) handleMemeCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	user := httpCtx.User(ctx)

	content := r.FormValue("content")

	if _, err := h.feed.CreateMeme(ctx, user, content); err != nil {
		if errors.Is(err, service.ErrEmptyContent) {
			h.notifier.Notify(w, r, flash.SeverityError, "Please enter some content for your meme")
			h.redirectToFeed(w, r)
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	h.notifier.Notify(w, r, flash.SeveritySuccess, "Meme posted successfully!")

	h.redirectToFeed(w, r)
}
