package dat

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func catalogWithSchema(t *testing.T, schemaURL string) *File {
	t.Helper()
	doc := fmt.Sprintf(`<datafile xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
		xsi:schemaLocation="http://www.logiqx.com/Dats %s">
		<game name="Alpha"><rom name="Alpha.sfc"/></game>
	</datafile>`, schemaURL)
	f, err := ParseReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	return f
}

func TestValidateSchemaOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"/>`)
	}))
	defer server.Close()

	v := NewValidator(5 * time.Second)
	if err := v.ValidateSchema(context.Background(), catalogWithSchema(t, server.URL)); err != nil {
		t.Errorf("ValidateSchema() error = %v, want nil", err)
	}
}

func TestValidateSchemaNoDeclaration(t *testing.T) {
	f, err := ParseReader(strings.NewReader(`<datafile><game name="x"><rom name="x.bin"/></game></datafile>`))
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	v := NewValidator(5 * time.Second)
	if err := v.ValidateSchema(context.Background(), f); err != nil {
		t.Errorf("ValidateSchema() error = %v, want nil for undeclared schema", err)
	}
}

func TestValidateSchemaHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	v := NewValidator(5 * time.Second)
	if err := v.ValidateSchema(context.Background(), catalogWithSchema(t, server.URL)); err == nil {
		t.Error("ValidateSchema() error = nil, want status error")
	}
}

func TestValidateSchemaMalformedSchema(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<xs:schema><unclosed>`)
	}))
	defer server.Close()

	v := NewValidator(5 * time.Second)
	if err := v.ValidateSchema(context.Background(), catalogWithSchema(t, server.URL)); err == nil {
		t.Error("ValidateSchema() error = nil, want well-formedness error")
	}
}
