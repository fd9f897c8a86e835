package services_test

import (
	"errors"
	"testing"

	"folio/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrConfiguration, "summarizer", "build", "api key missing", base)
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration marker, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "llm", "invoke", "", nil)
	if !errors.Is(err, services.ErrProvider) {
		t.Fatalf("expected provider fallback marker, got %v", err)
	}
}

func TestWrapOmitsEmptyParts(t *testing.T) {
	err := services.Wrap(services.ErrValidation, "", "", "", nil)
	if got := err.Error(); got != "validation error: service failure" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestIsFatalParse(t *testing.T) {
	err := services.Wrap(services.ErrParse, "epub", "container", "container.xml not found", nil)
	if !services.IsFatalParse(err) {
		t.Fatal("expected fatal parse classification")
	}
	if services.IsFatalParse(services.ErrNotFound) {
		t.Fatal("not-found must not classify as fatal parse")
	}
}
