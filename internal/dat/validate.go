package dat

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"
)

const userAgent = "dat2lpl/0.1.0"

// maxSchemaBytes bounds how much of a schema document is fetched.
const maxSchemaBytes = 4 << 20

// Validator retrieves a catalog's declared XML schema over the network and
// checks that it is a well-formed schema document. It is a best-effort
// side check: callers treat any returned error as a warning, never as a
// reason to discard parsed output.
type Validator struct {
	client *http.Client
}

// NewValidator builds a schema validator with a bounded request timeout.
func NewValidator(timeout time.Duration) *Validator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Validator{client: &http.Client{Timeout: timeout}}
}

// ValidateSchema fetches the schema referenced by f's xsi:schemaLocation
// attribute and verifies the response is well-formed XML. Returns nil when
// the document declares no schema. A single synchronous request is made
// with no retry.
func (v *Validator) ValidateSchema(ctx context.Context, f *File) error {
	schemaURL := f.SchemaLocation()
	if schemaURL == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, schemaURL, nil)
	if err != nil {
		return fmt.Errorf("build schema request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch schema %s: %w", schemaURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("fetch schema %s: unexpected status %s", schemaURL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSchemaBytes))
	if err != nil {
		return fmt.Errorf("read schema %s: %w", schemaURL, err)
	}

	decoder := xml.NewDecoder(bytes.NewReader(body))
	for {
		if _, err := decoder.Token(); err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("schema %s is not well-formed XML: %w", schemaURL, err)
		}
	}
}
