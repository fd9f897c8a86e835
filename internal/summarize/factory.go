package summarize

import (
	"sync"

	"folio/internal/config"
	"folio/internal/services"
	"folio/internal/services/llm"
)

// Factory hands out a provider for the active configuration. The provider
// is cached across acquisitions and rebuilt whenever the configuration hash
// changes, so stale credentials or model choices never leak into new
// requests.
type Factory struct {
	mu       sync.Mutex
	hash     string
	provider Provider
	build    func(cfg *config.Config) (Provider, error)
}

// FactoryOption customizes a Factory.
type FactoryOption func(*Factory)

// WithProviderBuilder overrides how providers are constructed. Tests use it
// to count rebuilds.
func WithProviderBuilder(build func(cfg *config.Config) (Provider, error)) FactoryOption {
	return func(f *Factory) {
		if build != nil {
			f.build = build
		}
	}
}

// NewFactory returns a factory that builds OpenRouter-backed providers.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{build: buildLLMProvider}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Acquire returns a provider for cfg, rebuilding the cached instance when
// the summarization-relevant configuration has changed.
func (f *Factory) Acquire(cfg *config.Config) (Provider, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrValidation, "summarize", "acquire", "config is required", nil)
	}
	if !cfg.ConfiguredLLM() {
		return nil, services.Wrap(services.ErrConfiguration, "summarize", "acquire", "llm api_key and model must be configured", nil)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	hash := cfg.Hash()
	if f.provider != nil && f.hash == hash {
		return f.provider, nil
	}

	provider, err := f.build(cfg)
	if err != nil {
		return nil, err
	}
	f.provider = provider
	f.hash = hash
	return provider, nil
}

func buildLLMProvider(cfg *config.Config) (Provider, error) {
	return llm.NewClient(llm.Config{
		APIKey:         cfg.LLM.APIKey,
		BaseURL:        cfg.LLM.BaseURL,
		Model:          cfg.LLM.Model,
		Referer:        cfg.LLM.Referer,
		Title:          cfg.LLM.Title,
		TimeoutSeconds: cfg.LLM.TimeoutSeconds,
	}), nil
}
