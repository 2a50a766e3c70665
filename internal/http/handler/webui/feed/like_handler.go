package feed

import (
	"net/http"

	"github.com/memehub/memehub/internal/core/model"
	"github.com/memehub/memehub/internal/core/port"
	"github.com/memehub/memehub/internal/http/flash"
	"github.com/memehub/memehub/internal/http/handler/webui/common"
	"github.com/pkg/errors"

	httpCtx "github.com/memehub/memehub/internal/http/context"
	httpURL "github.com/memehub/memehub/internal/http/url"
)

func (h *Handler) handleMemeLike(w http.ResponseWriter, r *http.Request) {
	memeID := model.MemeID(r.PathValue("id"))
	if memeID == "" {
		common.HandleError(w, r, common.NewHTTPError(http.StatusBadRequest))
		return
	}

	ctx := r.Context()
	user := httpCtx.User(ctx)

	if err := h.feed.LikeMeme(ctx, user, memeID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			h.notifier.Notify(w, r, flash.SeverityError, "This meme does not exist anymore.")
			h.redirectToFeed(w, r)
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	h.redirectToFeed(w, r)
}

func (h *Handler) redirectToFeed(w http.ResponseWriter, r *http.Request) {
	feedURL := httpURL.Mutate(httpCtx.BaseURL(r.Context()), httpURL.WithPath("/"))

	http.Redirect(w, r, feedURL.String(), http.StatusSeeOther)
}
