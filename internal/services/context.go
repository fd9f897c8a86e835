package services

import "context"

type contextKey string

const (
	bookIDKey       contextKey = "book_id"
	chapterIndexKey contextKey = "chapter_index"
	requestIDKey    contextKey = "request_id"
)

// WithBookID annotates context with the book identifier.
func WithBookID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, bookIDKey, id)
}

// BookIDFromContext extracts the book identifier if present.
func BookIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(bookIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithChapterIndex annotates context with the spine index being processed.
func WithChapterIndex(ctx context.Context, index int) context.Context {
	return context.WithValue(ctx, chapterIndexKey, index)
}

// ChapterIndexFromContext extracts the spine index if present.
func ChapterIndexFromContext(ctx context.Context) (int, bool) {
	if v, ok := ctx.Value(chapterIndexKey).(int); ok {
		return v, true
	}
	return 0, false
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
