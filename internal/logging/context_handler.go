package logging

import (
	"context"
	"log/slog"

	"folio/internal/services"
)

// contextHandler decorates records with the request annotations carried in
// the context, so every subsystem logging through a *Context method picks
// up book and chapter identifiers without threading them explicitly.
type contextHandler struct {
	inner slog.Handler
}

func withContextAttrs(inner slog.Handler) slog.Handler {
	return &contextHandler{inner: inner}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, record slog.Record) error {
	if id, ok := services.BookIDFromContext(ctx); ok {
		record.AddAttrs(slog.String("book_id", id))
	}
	if index, ok := services.ChapterIndexFromContext(ctx); ok {
		record.AddAttrs(slog.Int("chapter_index", index))
	}
	if id, ok := services.RequestIDFromContext(ctx); ok {
		record.AddAttrs(slog.String("request_id", id))
	}
	return h.inner.Handle(ctx, record)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{inner: h.inner.WithGroup(name)}
}
