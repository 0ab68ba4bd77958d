package textutil

import "strings"

// fileNameReplacer strips characters that are invalid on common filesystems.
var fileNameReplacer = strings.NewReplacer(
	"\\", "",
	"/", "",
	":", "",
	"*", "",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName removes filesystem-unsafe characters from a file name
// segment. The result is trimmed of leading/trailing whitespace.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}
