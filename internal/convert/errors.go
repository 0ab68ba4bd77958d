package convert

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParse marks a malformed or structurally unexpected catalog.
	ErrParse = errors.New("catalog parse error")
	// ErrConfig marks an invalid option combination, reported before any
	// processing begins.
	ErrConfig = errors.New("configuration error")
	// ErrIO marks a failure writing playlist output.
	ErrIO = errors.New("output error")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for classification at the CLI boundary. The
// marker should be one of the exported sentinel errors above.
func Wrap(marker error, operation string, err error) error {
	operation = strings.TrimSpace(operation)
	if operation == "" {
		operation = "pipeline failure"
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, operation, err)
	}
	return fmt.Errorf("%w: %s", marker, operation)
}
