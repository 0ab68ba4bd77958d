// Package logging builds slog loggers for the CLI.
//
// Two output formats are supported: a compact console format for interactive
// terminals and line-delimited JSON for scripted use. Attr helpers mirror
// the slog constructors so call sites stay terse.
package logging
