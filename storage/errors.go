package storage

import "errors"

// ErrAllocationFailed reports that a storage could not provide space for the
// requested shape or capacity: the backend is out of room, the shape's size
// or alignment exceeds what a fixed-capacity backend accepts, or a capacity
// value does not fit a composite's required integer width. There is no finer
// classification; callers branch only on success or failure.
var ErrAllocationFailed = errors.New("storage: allocation failed")
