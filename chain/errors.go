package chain

import "errors"

// Sentinel errors returned by this package. Use errors.Is for comparisons.
var (
	// ErrUnknownOperation is returned by Value when a link was recorded by a
	// name the registry does not know.
	ErrUnknownOperation = errors.New("chain: unknown operation")

	// ErrInvalidOperation is returned when registering or recording an
	// operation with an empty name or a nil function.
	ErrInvalidOperation = errors.New("chain: invalid operation")

	// ErrInvalidArgument is returned when a recorded argument has the wrong
	// type, such as a non-integer count or a non-callable tap.
	ErrInvalidArgument = errors.New("chain: invalid argument")
)
