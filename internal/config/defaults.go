package config

const (
	defaultDataDir            = "~/.local/share/folio"
	defaultLogDir             = "~/.local/share/folio/logs"
	defaultLLMBaseURL         = "https://openrouter.ai/api/v1/chat/completions"
	defaultLLMTimeoutSeconds  = 60
	defaultChunkSize          = 2000
	defaultChunkOverlap       = 200
	defaultDirectThreshold    = 3000
	defaultMapRateLimit       = 5
	defaultMapWorkers         = 3
	defaultCacheRetentionDays = 90
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		LLM: LLM{
			BaseURL:        defaultLLMBaseURL,
			TimeoutSeconds: defaultLLMTimeoutSeconds,
		},
		Summarizer: Summarizer{
			ChunkSize:          defaultChunkSize,
			ChunkOverlap:       defaultChunkOverlap,
			DirectThreshold:    defaultDirectThreshold,
			MapRateLimit:       defaultMapRateLimit,
			MapWorkers:         defaultMapWorkers,
			CacheRetentionDays: defaultCacheRetentionDays,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
