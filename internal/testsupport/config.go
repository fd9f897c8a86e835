package testsupport

import (
	"path/filepath"
	"testing"

	"folio/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithLLM fills the LLM credentials on the test config.
func WithLLM(apiKey, model string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.LLM.APIKey = apiKey
		cfg.LLM.Model = model
	}
}

// WithSummarizer overrides the chunking parameters on the test config.
func WithSummarizer(chunkSize, chunkOverlap, directThreshold int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Summarizer.ChunkSize = chunkSize
		cfg.Summarizer.ChunkOverlap = chunkOverlap
		cfg.Summarizer.DirectThreshold = directThreshold
	}
}
