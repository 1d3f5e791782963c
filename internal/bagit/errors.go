package bagit

import "errors"

var (
	// ErrBagExists indicates the target bag directory already exists.
	// Bags are write-once and never merged or overwritten.
	ErrBagExists = errors.New("bag directory already exists")

	// ErrBagNotFound indicates the bag directory does not exist.
	ErrBagNotFound = errors.New("bag directory does not exist")

	// ErrBagSizeUnstable indicates the Bag-Size fixed point did not
	// converge within the iteration cap.
	ErrBagSizeUnstable = errors.New("bag size did not converge")
)
