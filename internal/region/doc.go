// Package region classifies game titles by their region annotations.
//
// DAT catalog titles carry parenthetical region lists such as
// "Game Title (USA)" or "Game Title (Europe, Australia)". Tokens extracts
// the first such annotation as an ordered token list; Map optionally
// translates raw tokens into user-chosen output group keys.
//
// The World token is special: unless the run opts into treating it as an
// ordinary token, a World-tagged game belongs to every produced region
// group rather than forming a group of its own.
package region
