package manifest

import (
	"github.com/pkg/errors"
)

// Sentinel errors matched by the typed errors below.
var (
	// ErrManifestNotFound indicates that no manifest file exists in the working directory.
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrManifestParse indicates that the manifest exists but is not valid JSON
	// of the expected shape.
	ErrManifestParse = errors.New("manifest parse failed")
)

// NotFoundError is returned by Load when the manifest file is absent.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return "no " + FileName + " found in the root of this directory"
}

// Is implements errors.Is support.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrManifestNotFound
}

// ParseError is returned when the manifest cannot be decoded. The decoder
// error is kept for Unwrap but never shown in the message.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "there was an issue parsing the " + FileName + " file"
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *ParseError) Is(target error) bool {
	return target == ErrManifestParse
}
