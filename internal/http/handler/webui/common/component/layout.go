package component

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/memehub/memehub/internal/core/model"
	"github.com/memehub/memehub/internal/http/flash"
	"github.com/pkg/errors"
)

type AdsVModel struct {
	AnalyticsID string
	AdsClientID string
	AdsSlotID   string
}

type LayoutVModel struct {
	Title   string
	User    model.User
	Flashes []flash.Message
	Ads     AdsVModel
}

// Layout renders the page shell: head, navbar, flash notifications, then the
// body components. All dynamic values are HTML-escaped.
func Layout(vmodel LayoutVModel, body ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		title := vmodel.Title
		if title == "" {
			title = "MemeHub"
		}

		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(&b, `<title>%s</title>`, templ.EscapeString(title))
		writeHead(&b, vmodel.Ads)
		b.WriteString(`</head><body>`)

		writeNavbar(ctx, &b, vmodel.User)
		writeFlashes(&b, vmodel.Flashes)

		b.WriteString(`<main class="container">`)

		if _, err := io.WriteString(w, b.String()); err != nil {
			return errors.WithStack(err)
		}

		for _, c := range body {
			if err := c.Render(ctx, w); err != nil {
				return errors.WithStack(err)
			}
		}

		if _, err := io.WriteString(w, `</main></body></html>`); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
}

func writeHead(b *strings.Builder, ads AdsVModel) {
	b.WriteString(`<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bulma@1.0.2/css/bulma.min.css">`)

	// Best-effort analytics and ad bootstrap; excluded from any correctness
	// contract
	if ads.AnalyticsID != "" {
		fmt.Fprintf(b, `<script async src="https://www.googletagmanager.com/gtag/js?id=%s"></script>`, templ.EscapeString(ads.AnalyticsID))
		fmt.Fprintf(b, `<script>window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config','%s');</script>`, templ.EscapeString(ads.AnalyticsID))
	}

	if ads.AdsClientID != "" {
		fmt.Fprintf(b, `<script async src="https://pagead2.googlesyndication.com/pagead/js/adsbygoogle.js?client=%s" crossorigin="anonymous"></script>`, templ.EscapeString(ads.AdsClientID))
	}
}

func writeNavbar(ctx context.Context, b *strings.Builder, user model.User) {
	b.WriteString(`<nav class="navbar" role="navigation"><div class="navbar-brand">`)
	fmt.Fprintf(b, `<a class="navbar-item has-text-weight-bold" href="%s">MemeHub</a>`, BaseURL(ctx, WithPath("/")))
	b.WriteString(`</div><div class="navbar-end">`)

	if user != nil {
		fmt.Fprintf(b, `<div class="navbar-item user-email">%s</div>`, templ.EscapeString(user.Email()))
		fmt.Fprintf(b, `<div class="navbar-item"><a class="navbar-item" href="%s">Templates</a></div>`, BaseURL(ctx, WithPath("/templates/")))
		fmt.Fprintf(b, `<div class="navbar-item"><form method="post" action="%s"><button type="submit" class="button is-light">Sign Out</button></form></div>`, BaseURL(ctx, WithPath("/auth/logout")))
	}

	b.WriteString(`</div></nav>`)
}

func writeFlashes(b *strings.Builder, flashes []flash.Message) {
	if len(flashes) == 0 {
		return
	}

	b.WriteString(`<div class="container notifications">`)

	for _, message := range flashes {
		class := "is-info"
		switch message.Severity {
		case flash.SeveritySuccess:
			class = "is-success"
		case flash.SeverityError:
			class = "is-danger"
		}

		fmt.Fprintf(b, `<div class="notification %s">%s</div>`, class, templ.EscapeString(message.Text))
	}

	b.WriteString(`</div>`)
}

// AdSlot renders an ad unit when ads are configured.
func AdSlot(ads AdsVModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if ads.AdsClientID == "" || ads.AdsSlotID == "" {
			return nil
		}

		var b strings.Builder

		fmt.Fprintf(&b, `<ins class="adsbygoogle" style="display:block" data-ad-client="%s" data-ad-slot="%s" data-ad-format="auto"></ins>`,
			templ.EscapeString(ads.AdsClientID), templ.EscapeString(ads.AdsSlotID))
		b.WriteString(`<script>(adsbygoogle=window.adsbygoogle||[]).push({});</script>`)

		_, err := io.WriteString(w, b.String())
		return errors.WithStack(err)
	})
}
