package monads

import "errors"

// Sentinel errors carried by the panics raised when a panicking
// accessor is called on the wrong variant. The message text is part of
// the public contract.
var (
	// ErrUnwrapNone is raised by Option.Unwrap on None.
	ErrUnwrapNone = errors.New("Trying to unwrap None.")

	// ErrUnwrapLeft is raised by Either.UnwrapLeft on a Right.
	ErrUnwrapLeft = errors.New("Cannot unwrap Left value of Either.Right")

	// ErrUnwrapRight is raised by Either.UnwrapRight on a Left.
	ErrUnwrapRight = errors.New("Cannot unwrap Right value of Either.Left")

	// ErrUnwrapOk is raised by Result.Unwrap on an Err.
	ErrUnwrapOk = errors.New("Cannot unwrap Ok value of Result.Err")

	// ErrUnwrapErr is raised by Result.UnwrapErr on an Ok.
	ErrUnwrapErr = errors.New("Cannot unwrap Err value of Result.Ok")
)

// unwrapError selects the panic payload for a failed unwrap: an error
// carrying the caller's message when one was supplied, the fixed
// sentinel otherwise.
func unwrapError(sentinel error, msg []string) error {
	if len(msg) > 0 {
		return errors.New(msg[0])
	}
	return sentinel
}
