package segment

import "errors"

var (
	// ErrInvalidSequence indicates a segment sequence that is not
	// chronologically ordered and non-overlapping.
	ErrInvalidSequence = errors.New("invalid segment sequence")
)
