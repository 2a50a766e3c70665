package authn

import (
	"log/slog"
	"net/http"

	"github.com/memehub/memehub/internal/core/model"
	httpCtx "github.com/memehub/memehub/internal/http/context"
	"github.com/pkg/errors"
)

type Authenticator interface {
	Authenticate(w http.ResponseWriter, r *http.Request) (model.User, error)
}

// Middleware resolves the current session on every request and exposes the
// resulting user, if any, through the request context. Anonymous requests
// pass through with no user; handlers decide what anonymous visitors see.
func Middleware(authenticators ...Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			for _, authenticator := range authenticators {
				user, err := authenticator.Authenticate(w, r)
				if err != nil {
					// A session that can not be resolved is treated as absent
					slog.WarnContext(r.Context(), "could not authenticate user", slog.Any("error", errors.WithStack(err)))
					continue
				}

				if user == nil {
					continue
				}

				ctx := httpCtx.SetUser(r.Context(), user)

				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		}

		return fn
	}
}
