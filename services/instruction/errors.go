package instruction

import "errors"

// ErrInstructionNotFound is returned when a referenced instruction id does
// not exist where the operation requires it to.
var ErrInstructionNotFound = errors.New("instruction not found")
