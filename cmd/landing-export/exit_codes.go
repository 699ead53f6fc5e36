package main

import (
	"errors"
	"os"

	landing "github.com/floridaliza5000-byte/No-code-Landing-Page"
)

// Exit codes for landing-export.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful export
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, document file, or options
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadDocument) ||
		errors.Is(err, ErrWriteArchive) ||
		errors.Is(err, landing.ErrArchiveWrite) {
		return ExitIO
	}

	// Usage/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrParseDocument) ||
		errors.Is(err, ErrEmptyKind) ||
		errors.Is(err, landing.ErrUnknownBlockKind) ||
		errors.Is(err, landing.ErrInvalidMaxWidth) ||
		errors.Is(err, landing.ErrInvalidQuality) {
		return ExitUsage
	}

	return ExitGeneral
}
