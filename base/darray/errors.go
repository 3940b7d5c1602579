package darray

import (
	"errors"
)

// Errors.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidRange    = errors.New("invalid range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrTraversal       = errors.New("array is being traversed")
	ErrDestroyed       = errors.New("array was destroyed")
	ErrOutOfMemory     = errors.New("failed to allocate array storage")
	ErrClone           = errors.New("failed to clone item")
	ErrRelease         = errors.New("failed to release item")
)
