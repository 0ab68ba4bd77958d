// Package config loads, normalizes, and validates dat2lpl configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from an explicit path, the default
// ~/.config/dat2lpl/config.toml location, or a dat2lpl.toml in the working
// directory. Every command-line flag has a config counterpart; flags win
// when both are set.
package config
