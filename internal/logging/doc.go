// Package logging builds slog loggers for folio.
//
// Two output formats exist: a human console format (colorized when attached
// to a terminal) and JSON for machine consumption. NewFromConfig additionally
// tees records to folio.log under the configured log directory.
package logging
