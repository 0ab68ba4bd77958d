// Package convert orchestrates the catalog-to-playlist pipeline.
//
// A run is a single synchronous pass: parse the DAT catalog, classify each
// game by region, resolve its primary file against the ROM storage layout,
// accumulate output groups, and write one playlist file per group. Fatal
// failures are tagged with the package's sentinel errors (ErrParse,
// ErrConfig, ErrIO) so the CLI can classify them; the optional network
// schema validation degrades to a logged warning.
package convert
