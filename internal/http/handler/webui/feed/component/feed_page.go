package component

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
	"github.com/memehub/memehub/internal/core/model"
	"github.com/memehub/memehub/internal/http/flash"
	commonComp "github.com/memehub/memehub/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

type FeedPageVModel struct {
	User    model.User
	Flashes []flash.Message
	Ads     commonComp.AdsVModel
	Memes   []model.Meme
	Total   int64
}

// FeedPage renders the meme composer followed by the full feed, newest
// first. Meme content and author are HTML-escaped.
func FeedPage(vmodel FeedPageVModel) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		writeMemeForm(ctx, &b)
		writeMemeList(ctx, &b, vmodel)

		_, err := io.WriteString(w, b.String())
		return errors.WithStack(err)
	})

	return commonComp.Layout(commonComp.LayoutVModel{
		Title:   "Feed | MemeHub",
		User:    vmodel.User,
		Flashes: vmodel.Flashes,
		Ads:     vmodel.Ads,
	}, body, commonComp.AdSlot(vmodel.Ads))
}

func writeMemeForm(ctx context.Context, b *strings.Builder) {
	createURL := commonComp.BaseURL(ctx, commonComp.WithPath("/memes"))

	fmt.Fprintf(b, `<form class="meme-form" method="post" action="%s">`, createURL)
	b.WriteString(`<div class="field"><textarea class="textarea meme-input" name="content" placeholder="Share your meme..."></textarea></div>`)
	b.WriteString(`<div class="field"><button type="submit" class="button is-primary">Post Meme</button></div>`)
	b.WriteString(`</form>`)
}

func writeMemeList(ctx context.Context, b *strings.Builder, vmodel FeedPageVModel) {
	b.WriteString(`<div class="memes-list">`)

	if len(vmodel.Memes) == 0 {
		b.WriteString(`<p class="no-memes">No memes yet. Be the first to post!</p></div>`)
		return
	}

	for _, meme := range vmodel.Memes {
		writeMemeCard(ctx, b, meme, vmodel.User)
	}

	b.WriteString(`</div>`)
}

func writeMemeCard(ctx context.Context, b *strings.Builder, meme model.Meme, user model.User) {
	isOwner := user != nil && meme.OwnerID() == user.ID()

	likeURL := commonComp.BaseURL(ctx, commonComp.WithPath(fmt.Sprintf("/memes/%s/like", meme.ID())))
	deleteURL := commonComp.BaseURL(ctx, commonComp.WithPath(fmt.Sprintf("/memes/%s/delete", meme.ID())))

	fmt.Fprintf(b, `<div class="card meme-card" data-meme-id="%s">`, templ.EscapeString(string(meme.ID())))
	fmt.Fprintf(b, `<div class="card-content meme-content">%s</div>`, templ.EscapeString(meme.Content()))
	b.WriteString(`<div class="card-footer meme-metadata">`)
	fmt.Fprintf(b, `<span class="card-footer-item meme-author">Posted by %s, %s</span>`,
		templ.EscapeString(meme.Author()), templ.EscapeString(humanize.Time(meme.CreatedAt())))
	b.WriteString(`<div class="card-footer-item meme-actions">`)
	fmt.Fprintf(b, `<form method="post" action="%s"><button type="submit" class="button is-small btn-like">&#10084;&#65039; %d</button></form>`, likeURL, meme.Likes())

	if isOwner {
		fmt.Fprintf(b, `<form method="post" action="%s"><button type="submit" class="button is-small is-danger btn-delete">Delete</button></form>`, deleteURL)
	}

	b.WriteString(`</div></div></div>`)
}
