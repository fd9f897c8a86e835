package config

import (
	"fmt"
	"strings"
)

// Validate performs structural validation on a normalized config. It does not
// require LLM credentials; summarization checks those at engine construction
// so read-only commands work unconfigured.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return fmt.Errorf("config: data_dir is required")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: logging.format: unsupported value %q", c.Logging.Format)
	}

	if c.Summarizer.ChunkOverlap >= c.Summarizer.ChunkSize {
		return fmt.Errorf("config: summarizer.chunk_overlap (%d) must be smaller than chunk_size (%d)",
			c.Summarizer.ChunkOverlap, c.Summarizer.ChunkSize)
	}
	if c.Summarizer.DirectThreshold < c.Summarizer.ChunkSize {
		return fmt.Errorf("config: summarizer.direct_threshold (%d) must be at least chunk_size (%d)",
			c.Summarizer.DirectThreshold, c.Summarizer.ChunkSize)
	}
	return nil
}
