package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"folio/internal/config"
	"folio/internal/epub"
	"folio/internal/services"
	"folio/internal/store"
	"folio/internal/textutil"
)

// Provider abstracts the language model behind the map, reduce, and direct
// prompts. The model name participates in cache keys.
type Provider interface {
	Invoke(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Options tune a single summarization request.
type Options struct {
	// ForceRefresh skips the persisted-summary and content-cache lookups
	// and overwrites both layers with a fresh result.
	ForceRefresh bool
	// ChunkSize and ChunkOverlap override the configured chunking
	// parameters when positive.
	ChunkSize    int
	ChunkOverlap int
}

// Service summarizes chapters of one open book and exposes read access to
// the persisted results.
type Service struct {
	doc      *epub.Document
	store    *store.Store
	provider Provider
	settings config.Summarizer
	limiter  *rate.Limiter
	log      *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger attaches a logger for degraded paths and batch diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService builds a summarization service over an open document. It fails
// with a configuration error when no usable provider is supplied so callers
// can offer a "configure AI" hint instead of a generic failure.
func NewService(doc *epub.Document, st *store.Store, provider Provider, settings config.Summarizer, opts ...Option) (*Service, error) {
	if doc == nil {
		return nil, services.Wrap(services.ErrValidation, "summarize", "new", "document is required", nil)
	}
	if st == nil {
		return nil, services.Wrap(services.ErrValidation, "summarize", "new", "store is required", nil)
	}
	if provider == nil || strings.TrimSpace(provider.Model()) == "" {
		return nil, services.Wrap(services.ErrConfiguration, "summarize", "new", "language model provider is not configured", nil)
	}

	svc := &Service{
		doc:      doc,
		store:    st,
		provider: provider,
		settings: settings,
		log:      slog.Default(),
	}
	if settings.MapRateLimit > 0 {
		svc.limiter = rate.NewLimiter(rate.Limit(settings.MapRateLimit), 1)
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// SummarizeChapter produces (or returns the persisted) summary for one
// chapter index.
func (s *Service) SummarizeChapter(ctx context.Context, bookID string, chapterIndex int, opts Options) (*store.ChapterSummary, error) {
	if strings.TrimSpace(bookID) == "" {
		return nil, services.Wrap(services.ErrValidation, "summarize", "chapter", "book id is required", nil)
	}
	ctx = services.WithBookID(ctx, bookID)
	ctx = services.WithChapterIndex(ctx, chapterIndex)

	if !opts.ForceRefresh {
		existing, err := s.store.GetSummary(ctx, bookID, chapterIndex)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	chapter, err := s.doc.ChapterContent(chapterIndex)
	if err != nil {
		return nil, err
	}
	content := strings.TrimSpace(chapter.Text)
	if content == "" {
		return nil, services.Wrap(services.ErrValidation, "summarize", "chapter", fmt.Sprintf("chapter %d has no textual content", chapterIndex), nil)
	}

	key := store.CacheKey(content, s.provider.Model())
	var summaryText string
	cacheHit := false
	if !opts.ForceRefresh {
		entry, err := s.store.GetCached(ctx, key)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			summaryText = entry.Response
			cacheHit = true
		}
	}

	if !cacheHit {
		if len(content) > s.directThreshold() {
			summaryText, err = s.mapReduce(ctx, content, opts)
		} else {
			summaryText, err = s.provider.Invoke(ctx, directPrompt(content))
		}
		if err != nil {
			return nil, err
		}
		if err := s.store.PutCached(ctx, key, summaryText, s.provider.Model()); err != nil {
			return nil, err
		}
	}

	summary := &store.ChapterSummary{
		BookID:       bookID,
		ChapterIndex: chapterIndex,
		ChapterTitle: chapter.Title,
		Summary:      summaryText,
		Model:        s.provider.Model(),
	}
	if err := s.store.UpsertSummary(ctx, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// SummarizeChapters runs the single-chapter flow for each index in order.
// Failures are logged and skipped so one bad chapter does not abort the
// batch; the error is non-nil only when every index failed.
func (s *Service) SummarizeChapters(ctx context.Context, bookID string, indices []int, opts Options) ([]store.ChapterSummary, error) {
	var summaries []store.ChapterSummary
	var firstErr error
	for _, idx := range indices {
		summary, err := s.SummarizeChapter(ctx, bookID, idx, opts)
		if err != nil {
			s.log.WarnContext(services.WithChapterIndex(services.WithBookID(ctx, bookID), idx),
				"chapter summarization failed", slog.Any("error", err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		summaries = append(summaries, *summary)
	}
	if len(summaries) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return summaries, nil
}

// GetSummary returns the persisted summary for (bookID, chapterIndex), or
// nil when none exists.
func (s *Service) GetSummary(ctx context.Context, bookID string, chapterIndex int) (*store.ChapterSummary, error) {
	return s.store.GetSummary(ctx, bookID, chapterIndex)
}

// GetAllSummaries returns every persisted summary for the book in chapter
// order.
func (s *Service) GetAllSummaries(ctx context.Context, bookID string) ([]store.ChapterSummary, error) {
	return s.store.GetAllSummaries(ctx, bookID)
}

// DeleteSummary removes the persisted summary for (bookID, chapterIndex).
func (s *Service) DeleteSummary(ctx context.Context, bookID string, chapterIndex int) error {
	return s.store.DeleteSummary(ctx, bookID, chapterIndex)
}

func (s *Service) directThreshold() int {
	if s.settings.DirectThreshold > 0 {
		return s.settings.DirectThreshold
	}
	return 3000
}

func (s *Service) chunkParams(opts Options) (int, int) {
	size := s.settings.ChunkSize
	if opts.ChunkSize > 0 {
		size = opts.ChunkSize
	}
	overlap := s.settings.ChunkOverlap
	if opts.ChunkOverlap > 0 {
		overlap = opts.ChunkOverlap
	}
	return size, overlap
}

// mapReduce summarizes every chunk concurrently, then synthesizes the chunk
// summaries into one result. The reduce call strictly waits for all map
// results.
func (s *Service) mapReduce(ctx context.Context, content string, opts Options) (string, error) {
	size, overlap := s.chunkParams(opts)
	chunks := textutil.NewChunker(size, overlap).Split(content)
	if len(chunks) == 1 {
		return s.provider.Invoke(ctx, directPrompt(content))
	}

	results := make([]string, len(chunks))
	errs := make([]error, len(chunks))
	workers := s.settings.MapWorkers
	if workers <= 0 {
		workers = 3
	}
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if s.limiter != nil {
				if err := s.limiter.Wait(ctx); err != nil {
					errs[i] = err
					return
				}
			}
			out, err := s.provider.Invoke(ctx, mapPrompt(chunk))
			if err != nil {
				errs[i] = fmt.Errorf("map chunk %d/%d: %w", i+1, len(chunks), err)
				return
			}
			results[i] = out
		}(i, chunk)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return "", err
		}
	}
	return s.provider.Invoke(ctx, reducePrompt(strings.Join(results, reduceDelimiter)))
}
