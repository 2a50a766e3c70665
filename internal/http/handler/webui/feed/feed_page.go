package feed

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/memehub/memehub/internal/core/port"
	"github.com/memehub/memehub/internal/http/handler/webui/common"
	"github.com/memehub/memehub/internal/http/handler/webui/feed/component"
	"github.com/pkg/errors"

	httpCtx "github.com/memehub/memehub/internal/http/context"
)

func (h *Handler) getFeedPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillFeedPageViewModel(w, r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	feedPage := component.FeedPage(*vmodel)

	templ.Handler(feedPage).ServeHTTP(w, r)
}

func (h *Handler) fillFeedPageViewModel(w http.ResponseWriter, r *http.Request) (*component.FeedPageVModel, error) {
	vmodel := &component.FeedPageVModel{
		Ads:     h.ads,
		Flashes: h.notifier.Pop(w, r),
	}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillFeedPageVModelUser,
		h.fillFeedPageVModelMemes,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillFeedPageVModelUser(ctx context.Context, vmodel *component.FeedPageVModel, r *http.Request) error {
	vmodel.User = httpCtx.User(ctx)

	return nil
}

func (h *Handler) fillFeedPageVModelMemes(ctx context.Context, vmodel *component.FeedPageVModel, r *http.Request) error {
	memes, total, err := h.feed.LoadFeed(ctx, port.QueryMemesOptions{})
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Memes = memes
	vmodel.Total = total

	return nil
}
