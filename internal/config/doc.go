// Package config loads, validates, and normalizes folio configuration.
//
// Configuration is read from TOML (explicit path, then
// ~/.config/folio/config.toml, then ./folio.toml) over compiled defaults.
// Config.Hash fingerprints the summarization-relevant fields so callers can
// detect when a cached engine was built against stale settings.
package config
