package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "task-master/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusNotFound, "task not found"))

	he, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatalf("expected wrapped HTTPError to be found")
	}
	if he.StatusCode != http.StatusNotFound || he.Message != "task not found" {
		t.Errorf("unexpected error: %+v", he)
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Errorf("plain error must not match")
	}
}
