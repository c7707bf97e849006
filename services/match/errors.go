package match

import "errors"

var (
	// ErrMatchNotFound is returned when a referenced match id does not exist
	// where the operation requires it to.
	ErrMatchNotFound = errors.New("match not found")

	// ErrDuplicatePair is returned when an insert loses the race against a
	// concurrent request for the same username pair.
	ErrDuplicatePair = errors.New("pending match already exists for pair")

	// ErrInvalidRole is returned when a caller supplies a role other than
	// driver or passenger.
	ErrInvalidRole = errors.New("role must be driver or passenger")
)
