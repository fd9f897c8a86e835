package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParse marks fatal EPUB parse failures (missing container.xml,
	// unresolvable OPF, missing package node). No recovery path exists.
	ErrParse = errors.New("parse error")
	// ErrNotFound marks content-resolution failures, e.g. a chapter href
	// absent from the archive after every resolution strategy.
	ErrNotFound = errors.New("not found")
	// ErrConfiguration marks missing or invalid AI configuration so callers
	// can surface a "configure AI" affordance instead of a generic failure.
	ErrConfiguration = errors.New("configuration error")
	// ErrValidation marks rejected input such as an out-of-range chapter
	// index or empty chapter content.
	ErrValidation = errors.New("validation error")
	// ErrProvider marks failures from the language-model backend.
	ErrProvider = errors.New("provider error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrProvider
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatalParse reports whether err aborts the whole import rather than a
// single chapter.
func IsFatalParse(err error) bool {
	return errors.Is(err, ErrParse)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
