package log

import (
	"context"
	"log/slog"
)

type contextKey string

const keyAttrs contextKey = "attrs"

// WithAttrs returns a new context carrying the given attributes. Log
// records emitted with this context via a ContextHandler will include them.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	existing, ok := ctx.Value(keyAttrs).([]slog.Attr)
	if ok {
		attrs = append(existing[:len(existing):len(existing)], attrs...)
	}

	return context.WithValue(ctx, keyAttrs, attrs)
}

// ContextHandler decorates a slog.Handler with the attributes attached to
// the record's context via WithAttrs.
type ContextHandler struct {
	slog.Handler
}

// Handle implements slog.Handler.
func (h ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if attrs, ok := ctx.Value(keyAttrs).([]slog.Attr); ok {
		record.AddAttrs(attrs...)
	}

	return h.Handler.Handle(ctx, record)
}

var _ slog.Handler = ContextHandler{}
