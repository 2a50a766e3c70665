package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	httpCtx "github.com/memehub/memehub/internal/http/context"
	"github.com/pkg/errors"
	sloghttp "github.com/samber/slog-http"
)

type Server struct {
	opts *Options
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	baseURL, err := url.Parse(s.opts.BaseURL)
	if err != nil {
		return errors.Wrap(err, "could not parse base url")
	}

	mux := http.NewServeMux()

	for prefix, handler := range s.opts.Mounts {
		mount(mux, prefix, handler)
	}

	var handler http.Handler = mux
	handler = s.urlContext(baseURL, handler)
	handler = sloghttp.Recovery(handler)
	handler = sloghttp.New(slog.Default())(handler)

	server := &http.Server{
		Addr:    s.opts.Address,
		Handler: handler,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	done := make(chan error, 1)

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		done <- server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	if err := <-done; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Server) urlContext(baseURL *url.URL, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		current := *r.URL
		if current.Host == "" {
			current.Host = r.Host
		}

		ctx = httpCtx.SetBaseURL(ctx, baseURL)
		ctx = httpCtx.SetCurrentURL(ctx, &current)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

func NewServer(funcs ...OptionFunc) *Server {
	return &Server{
		opts: NewOptions(funcs...),
	}
}
