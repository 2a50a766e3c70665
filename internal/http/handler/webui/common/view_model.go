package common

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

type FillFunc[V any] func(ctx context.Context, vmodel *V, r *http.Request) error

func FillViewModel[V any](ctx context.Context, vmodel *V, r *http.Request, funcs ...FillFunc[V]) error {
	for _, fn := range funcs {
		if err := fn(ctx, vmodel, r); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
