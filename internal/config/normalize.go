package config

import "strings"

// normalize expands paths and fills zero-valued tuning fields with defaults
// so a sparse config file behaves like Default().
func (c *Config) normalize() error {
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return err
	}

	c.LLM.APIKey = strings.TrimSpace(c.LLM.APIKey)
	c.LLM.BaseURL = strings.TrimSpace(c.LLM.BaseURL)
	c.LLM.Model = strings.TrimSpace(c.LLM.Model)
	c.LLM.Referer = strings.TrimSpace(c.LLM.Referer)
	c.LLM.Title = strings.TrimSpace(c.LLM.Title)
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = defaultLLMBaseURL
	}
	if c.LLM.TimeoutSeconds <= 0 {
		c.LLM.TimeoutSeconds = defaultLLMTimeoutSeconds
	}

	if c.Summarizer.ChunkSize <= 0 {
		c.Summarizer.ChunkSize = defaultChunkSize
	}
	if c.Summarizer.ChunkOverlap < 0 {
		c.Summarizer.ChunkOverlap = defaultChunkOverlap
	}
	if c.Summarizer.DirectThreshold <= 0 {
		c.Summarizer.DirectThreshold = defaultDirectThreshold
	}
	if c.Summarizer.MapRateLimit <= 0 {
		c.Summarizer.MapRateLimit = defaultMapRateLimit
	}
	if c.Summarizer.MapWorkers <= 0 {
		c.Summarizer.MapWorkers = defaultMapWorkers
	}
	if c.Summarizer.CacheRetentionDays <= 0 {
		c.Summarizer.CacheRetentionDays = defaultCacheRetentionDays
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
