// Package textutil provides text chunking and filename sanitation helpers
// shared by the summarization pipeline and the CLI.
package textutil
