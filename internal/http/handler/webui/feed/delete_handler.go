package feed

import (
	"log/slog"
	"net/http"

	"github.com/memehub/memehub/internal/core/model"
	"github.com/memehub/memehub/internal/core/port"
	"github.com/memehub/memehub/internal/core/service"
	"github.com/memehub/memehub/internal/http/flash"
	"github.com/memehub/memehub/internal/http/handler/webui/common"
	"github.com/pkg/errors"

	httpCtx "github.com/memehub/memehub/internal/http/context"
)

func (h *Handler) handleMemeDelete(w http.ResponseWriter, r *http.Request) {
	memeID := model.MemeID(r.PathValue("id"))
	if memeID == "" {
		common.HandleError(w, r, common.NewHTTPError(http.StatusBadRequest))
		return
	}

	ctx := r.Context()
	user := httpCtx.User(ctx)

	// Ownership is checked by the service, not by the rendered controls
	if err := h.feed.DeleteMeme(ctx, user, memeID); err != nil {
		switch {
		case errors.Is(err, port.ErrNotFound):
			h.notifier.Notify(w, r, flash.SeverityError, "This meme does not exist anymore.")
			h.redirectToFeed(w, r)
			return
		case errors.Is(err, service.ErrNotOwner):
			common.HandleError(w, r, common.NewError("not the owner", "You can only delete your own memes.", http.StatusForbidden))
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	slog.InfoContext(ctx, "meme deleted from feed",
		slog.String("meme_id", string(memeID)),
		slog.String("user_id", string(user.ID())))

	h.notifier.Notify(w, r, flash.SeveritySuccess, "Meme deleted successfully!")

	h.redirectToFeed(w, r)
}
