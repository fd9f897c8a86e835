// Package store persists chapter summaries and raw model outputs in an
// embedded SQLite database.
//
// Two tables exist. chapter_summaries is identity-addressed: one row per
// (book_id, chapter_index), where re-summarization overwrites. ai_cache is
// content-addressed: rows are keyed by a hash of (content, model) so two
// chapters with identical text and model share one entry, independent of
// which book they came from.
//
// The store is a synchronous single-writer; a file lock next to the database
// keeps a second process from opening it concurrently.
package store
