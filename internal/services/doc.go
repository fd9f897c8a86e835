// Package services defines shared utilities consumed by the parsing pipeline
// and the summarization engine.
//
// Key responsibilities:
//   - Context helpers that stamp book identifiers, chapter indices, and
//     correlation identifiers for logging.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification (parse vs configuration vs provider) uniform so callers
//     can branch with errors.Is instead of string matching.
package services
