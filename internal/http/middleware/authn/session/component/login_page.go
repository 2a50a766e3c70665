package component

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/memehub/memehub/internal/http/flash"
	commonComp "github.com/memehub/memehub/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

type LoginPageVModel struct {
	Flashes []flash.Message
}

// LoginPage renders the authentication form shown to anonymous visitors:
// one email/password form with separate sign-in and sign-up submit actions.
func LoginPage(vmodel LoginPageVModel) templ.Component {
	form := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		signInURL := commonComp.BaseURL(ctx, commonComp.WithPath("/auth/login"))
		signUpURL := commonComp.BaseURL(ctx, commonComp.WithPath("/auth/signup"))

		b.WriteString(`<section class="section auth-form"><h2 class="title">Authentication</h2>`)
		fmt.Fprintf(&b, `<form method="post" action="%s">`, signInURL)
		b.WriteString(`<div class="field"><input class="input" type="email" name="email" placeholder="Email" required></div>`)
		b.WriteString(`<div class="field"><input class="input" type="password" name="password" placeholder="Password" required></div>`)
		b.WriteString(`<div class="field is-grouped">`)
		b.WriteString(`<button type="submit" class="button is-primary">Sign In</button>`)
		fmt.Fprintf(&b, `<button type="submit" class="button is-link is-light" formaction="%s">Sign Up</button>`, signUpURL)
		b.WriteString(`</div></form></section>`)

		_, err := io.WriteString(w, b.String())
		return errors.WithStack(err)
	})

	return commonComp.Layout(commonComp.LayoutVModel{
		Title:   "Sign in | MemeHub",
		Flashes: vmodel.Flashes,
	}, form)
}
