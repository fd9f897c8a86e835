// Package summarize drives chapter summarization: direct for short
// chapters, map-reduce for long ones, with content-addressed caching and
// per-chapter persistence.
package summarize
