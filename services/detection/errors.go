package detection

import "errors"

// ErrDetectionNotFound is returned when a detection id does not exist
var ErrDetectionNotFound = errors.New("detection not found")
