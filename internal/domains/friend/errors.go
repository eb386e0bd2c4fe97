package friend

import "errors"

// ErrFriendNotFound is returned when no friend matches the given id.
var ErrFriendNotFound = errors.New("friend not found")
