// Package either provides backward compatibility aliases.
// Deprecated: Use github.com/gibbz00/monads instead.
package either

import "github.com/gibbz00/monads"

// Either is an alias for monads.Either.
// Deprecated: Use monads.Either instead.
type Either[L, R any] = monads.Either[L, R]

// Left creates a Left value.
// Deprecated: Use monads.Left instead.
func Left[L, R any](value L) Either[L, R] {
	return monads.Left[L, R](value)
}

// Right creates a Right value.
// Deprecated: Use monads.Right instead.
func Right[L, R any](value R) Either[L, R] {
	return monads.Right[L, R](value)
}

// IsLeft returns true if the Either contains a left value.
// Deprecated: Use Either.IsLeft instead.
func IsLeft[L, R any](e Either[L, R]) bool {
	return e.IsLeft()
}

// IsRight returns true if the Either contains a right value.
// Deprecated: Use Either.IsRight instead.
func IsRight[L, R any](e Either[L, R]) bool {
	return e.IsRight()
}

// MapLeft applies a transformation function to the left value.
// Deprecated: Use monads.MapEitherLeft instead.
func MapLeft[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	return monads.MapEitherLeft(e, fn)
}

// MapRight applies a transformation function to the right value.
// Deprecated: Use monads.MapEitherRight instead.
func MapRight[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	return monads.MapEitherRight(e, fn)
}

// FlatMapLeft applies a function that returns an Either.
// Deprecated: Use monads.FlatMapEitherLeft instead.
func FlatMapLeft[L, R, U any](e Either[L, R], fn func(L) Either[U, R]) Either[U, R] {
	return monads.FlatMapEitherLeft(e, fn)
}

// FlatMapRight applies a function that returns an Either.
// Deprecated: Use monads.FlatMapEitherRight instead.
func FlatMapRight[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	return monads.FlatMapEitherRight(e, fn)
}

// Fold reduces the Either to a single value with one function per side.
// Deprecated: Use monads.MatchEither instead.
func Fold[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	return monads.MatchEither(e, onLeft, onRight)
}

// FromError creates an Either from a value and an error, placing the
// error on the left side when non-nil.
// Deprecated: Use monads.TryFunc with monads.ResultToEither instead.
func FromError[T any](value T, err error) Either[error, T] {
	return monads.ResultToEither(monads.TryFunc(value, err))
}

// ToError unpacks an Either[error, T] into a value and error pair.
// Deprecated: Use monads.EitherToResult instead.
func ToError[T any](e Either[error, T]) (T, error) {
	if e.IsRight() {
		return e.UnwrapRight(), nil
	}
	var zero T
	return zero, e.UnwrapLeft()
}
