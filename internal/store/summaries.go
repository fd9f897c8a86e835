package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const summaryColumns = "id, book_id, chapter_index, chapter_title, summary, model, created_at"

// UpsertSummary writes a summary row, overwriting any prior value for the
// same (book_id, chapter_index). The record's ID and CreatedAt are assigned
// when empty.
func (s *Store) UpsertSummary(ctx context.Context, summary *ChapterSummary) error {
	if summary == nil {
		return errors.New("summary is nil")
	}
	if strings.TrimSpace(summary.BookID) == "" {
		return errors.New("summary book id is required")
	}
	if summary.ID == "" {
		summary.ID = uuid.NewString()
	}
	if summary.CreatedAt.IsZero() {
		summary.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO chapter_summaries (`+summaryColumns+`)
         VALUES (?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT (book_id, chapter_index) DO UPDATE SET
             id = excluded.id,
             chapter_title = excluded.chapter_title,
             summary = excluded.summary,
             model = excluded.model,
             created_at = excluded.created_at`,
		summary.ID,
		summary.BookID,
		summary.ChapterIndex,
		nullableString(summary.ChapterTitle),
		summary.Summary,
		summary.Model,
		summary.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert summary: %w", err)
	}
	return nil
}

// GetSummary fetches the summary for (bookID, chapterIndex), or nil when
// none exists.
func (s *Store) GetSummary(ctx context.Context, bookID string, chapterIndex int) (*ChapterSummary, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+summaryColumns+` FROM chapter_summaries WHERE book_id = ? AND chapter_index = ?`,
		bookID, chapterIndex,
	)
	summary, err := scanSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}
	return summary, nil
}

// GetAllSummaries returns every summary for a book ordered by chapter index.
func (s *Store) GetAllSummaries(ctx context.Context, bookID string) ([]ChapterSummary, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+summaryColumns+` FROM chapter_summaries WHERE book_id = ? ORDER BY chapter_index`,
		bookID,
	)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()

	var summaries []ChapterSummary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, *summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summaries: %w", err)
	}
	return summaries, nil
}

// DeleteSummary removes the summary for (bookID, chapterIndex). Deleting a
// missing row is not an error.
func (s *Store) DeleteSummary(ctx context.Context, bookID string, chapterIndex int) error {
	if _, err := s.db.ExecContext(
		ctx,
		`DELETE FROM chapter_summaries WHERE book_id = ? AND chapter_index = ?`,
		bookID, chapterIndex,
	); err != nil {
		return fmt.Errorf("delete summary: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (*ChapterSummary, error) {
	var summary ChapterSummary
	var title sql.NullString
	var createdAt string
	if err := row.Scan(
		&summary.ID,
		&summary.BookID,
		&summary.ChapterIndex,
		&title,
		&summary.Summary,
		&summary.Model,
		&createdAt,
	); err != nil {
		return nil, err
	}
	summary.ChapterTitle = title.String
	if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		summary.CreatedAt = ts
	}
	return &summary, nil
}
