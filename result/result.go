// Package result provides backward compatibility aliases.
// Deprecated: Use github.com/gibbz00/monads instead.
package result

import "github.com/gibbz00/monads"

// Result is an alias for monads.Result.
// Deprecated: Use monads.Result instead.
type Result[T any] = monads.Result[T]

// Ok creates an Ok value.
// Deprecated: Use monads.Ok instead.
func Ok[T any](value T) Result[T] {
	return monads.Ok(value)
}

// Err creates an Err value.
// Deprecated: Use monads.Err instead.
func Err[T any](err error) Result[T] {
	return monads.Err[T](err)
}

// IsOk returns true if the Result is successful.
// Deprecated: Use Result.IsOk instead.
func IsOk[T any](r Result[T]) bool {
	return r.IsOk()
}

// IsErr returns true if the Result is a failure.
// Deprecated: Use Result.IsErr instead.
func IsErr[T any](r Result[T]) bool {
	return r.IsErr()
}

// Map applies a transformation function to the success value.
// Deprecated: Use monads.MapResult instead.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	return monads.MapResult(r, fn)
}

// MapErr applies a function to the error.
// Deprecated: Use monads.MapResultErr instead.
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	return monads.MapResultErr(r, fn)
}

// FlatMap applies a function that returns a Result.
// Deprecated: Use monads.FlatMapResult instead.
func FlatMap[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	return monads.FlatMapResult(r, fn)
}

// Match executes one of two functions and returns the result.
// Deprecated: Use monads.MatchResult instead.
func Match[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	return monads.MatchResult(r, onOk, onErr)
}

// Try wraps a function that may return an error.
// Deprecated: Use monads.Try instead.
func Try[T any](fn func() (T, error)) Result[T] {
	return monads.Try(fn)
}
