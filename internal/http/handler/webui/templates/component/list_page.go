package component

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/memehub/memehub/internal/core/model"
	commonComp "github.com/memehub/memehub/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

type TemplateListPageVModel struct {
	User      model.User
	Templates []model.MemeTemplate
}

func TemplateListPage(vmodel TemplateListPageVModel) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<section class="section"><h1 class="title">Meme templates</h1><div class="columns is-multiline">`)

		for _, t := range vmodel.Templates {
			b.WriteString(`<div class="column is-one-third"><div class="card">`)
			fmt.Fprintf(&b, `<div class="card-image"><figure class="image"><img src="%s" alt="%s" loading="lazy"></figure></div>`,
				templ.EscapeString(t.ImageURL()), templ.EscapeString(t.Name()))
			fmt.Fprintf(&b, `<div class="card-content"><p class="title is-5">%s</p><p class="subtitle is-6">%d text boxes</p></div>`,
				templ.EscapeString(t.Name()), t.TextBoxes())
			b.WriteString(`</div></div>`)
		}

		b.WriteString(`</div></section>`)

		_, err := io.WriteString(w, b.String())
		return errors.WithStack(err)
	})

	return commonComp.Layout(commonComp.LayoutVModel{
		Title: "Templates | MemeHub",
		User:  vmodel.User,
	}, body)
}
