package component

import (
	"context"

	"github.com/a-h/templ"
	httpCtx "github.com/memehub/memehub/internal/http/context"
	"github.com/memehub/memehub/internal/http/url"
)

var (
	WithPath   = url.WithPath
	WithValues = url.WithValues
)

func BaseURL(ctx context.Context, funcs ...url.MutationFunc) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	mutated := url.Mutate(baseURL, funcs...)
	return templ.SafeURL(mutated.String())
}

func CurrentURL(ctx context.Context, funcs ...url.MutationFunc) templ.SafeURL {
	currentURL := httpCtx.CurrentURL(ctx)
	mutated := url.Mutate(currentURL, funcs...)
	return templ.SafeURL(mutated.String())
}
