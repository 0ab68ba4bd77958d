// Package textutil provides text processing utilities for filename
// sanitization.
//
// Playlist group files are named after region group keys, which come from
// catalog annotations or user-supplied mapping values and may contain
// characters that are invalid on common filesystems. SanitizeFileName strips
// those characters so derived file names are safe everywhere.
package textutil
