package cli

import "errors"

// CLI-specific sentinel errors.
// These are validation/usage errors that don't belong to domain packages.

var (
	// ErrFileNotFound indicates the specified input file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedFormat indicates the input file is not a JSON
	// segments file.
	ErrUnsupportedFormat = errors.New("unsupported input format")

	// ErrOutputExists indicates the output file already exists.
	ErrOutputExists = errors.New("output file already exists")

	// ErrConfig indicates the configuration could not be loaded.
	ErrConfig = errors.New("invalid configuration")
)
