package component

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

type LinkItem struct {
	Label string
	URL   templ.SafeURL
}

type ErrorPageVModel struct {
	Message string
	Links   []LinkItem
}

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<section class="section"><h1 class="title">Oops</h1>`)
		fmt.Fprintf(&b, `<p class="error">%s</p>`, templ.EscapeString(vmodel.Message))

		links := vmodel.Links
		if len(links) == 0 {
			links = []LinkItem{{Label: "Back to the feed", URL: BaseURL(ctx, WithPath("/"))}}
		}

		b.WriteString(`<ul>`)
		for _, link := range links {
			fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`, link.URL, templ.EscapeString(link.Label))
		}
		b.WriteString(`</ul></section>`)

		_, err := io.WriteString(w, b.String())
		return errors.WithStack(err)
	})

	return Layout(LayoutVModel{Title: "Error | MemeHub"}, body)
}
