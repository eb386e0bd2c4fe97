package memory

import "errors"

// ErrMemoryNotFound is returned when no memory matches the given id.
var ErrMemoryNotFound = errors.New("memory not found")
