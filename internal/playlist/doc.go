// Package playlist accumulates resolved catalog entries into output groups
// and serializes them in the front-end's LPL JSON playlist format.
//
// The builder preserves catalog order within every group and fixes group
// file ordering by first appearance. In region-split mode one playlist file
// is emitted per group, named after the configured output path with the
// sanitized group key appended; games without a region annotation collect
// into a separate "No Region" file emitted last.
package playlist
