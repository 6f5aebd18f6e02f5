package ranktree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("ranktree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("ranktree: index out of bounds")
	// ErrUnsorted signals input entries which violate the tree's key order.
	ErrUnsorted = errors.New("ranktree: entries not sorted")
	// ErrCorrupt signals a violated structural invariant. It is reported by
	// Check and always indicates a bug in the tree implementation or in a
	// client-supplied rank group.
	ErrCorrupt = errors.New("ranktree: corrupt tree")
)
