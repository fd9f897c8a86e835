package store

import "time"

// ChapterSummary is one persisted summary, unique per (BookID, ChapterIndex).
type ChapterSummary struct {
	ID           string
	BookID       string
	ChapterIndex int
	ChapterTitle string
	Summary      string
	Model        string
	CreatedAt    time.Time
}

// CacheEntry is one raw model output, unique per CacheKey.
type CacheEntry struct {
	ID        string
	CacheKey  string
	Response  string
	Model     string
	CreatedAt time.Time
}
