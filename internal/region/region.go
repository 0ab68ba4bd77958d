package region

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// NoRegion is the group key assigned to games whose title carries no
// parenthetical region annotation.
const NoRegion = "No Region"

// annotationPattern matches the first parenthetical annotation whose content
// looks like a region or country list, e.g. "(USA)" or "(Europe, Australia)".
var annotationPattern = regexp.MustCompile(`\(([A-Za-z .\-]+(?:,[A-Za-z .\-]+)*)\)`)

var foldCaser = cases.Fold()

// Tokens extracts the raw region tokens from a game title. Only the first
// matching annotation is consumed; its content is split on commas and
// trimmed. A title without an annotation yields no tokens.
func Tokens(title string) []string {
	match := annotationPattern.FindStringSubmatch(title)
	if match == nil {
		return nil
	}
	parts := strings.Split(match[1], ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// IsWorld reports whether token is the literal World annotation,
// compared case-insensitively.
func IsWorld(token string) bool {
	return foldCaser.String(token) == "world"
}

// ContainsWorld reports whether any token is the World annotation.
func ContainsWorld(tokens []string) bool {
	for _, token := range tokens {
		if IsWorld(token) {
			return true
		}
	}
	return false
}
