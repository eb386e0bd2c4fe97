package youtube

import "errors"

// ErrVideoNotFound is returned when no video matches the given id.
var ErrVideoNotFound = errors.New("video not found")
