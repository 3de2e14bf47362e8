package monads

import "fmt"

// Result represents the outcome of an operation that may fail.
// It contains either a success value or an error.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// ResultTag identifies the variant held by a Result.
type ResultTag uint8

// Result variants.
const (
	TagErr ResultTag = iota
	TagOk
)

// Ok creates a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err creates a failed Result.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err, ok: false}
}

// Try wraps a function that may return an error.
func Try[T any](fn func() (T, error)) Result[T] {
	value, err := fn()
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// TryFunc wraps a function call with error handling.
func TryFunc[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// Tag returns the variant discriminant.
func (r Result[T]) Tag() ResultTag {
	if r.ok {
		return TagOk
	}
	return TagErr
}

// IsOk returns true if the Result is successful.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is a failure.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Ok projects the success value into an Option: Some for an Ok, None
// for an Err.
func (r Result[T]) Ok() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// Err projects the error into an Option: Some for an Err, None for an
// Ok.
func (r Result[T]) Err() Option[error] {
	if r.ok {
		return None[error]()
	}
	return Some(r.err)
}

// Unwrap returns the success value. On an Err it panics with
// ErrUnwrapOk, or with an error carrying msg when one is given.
func (r Result[T]) Unwrap(msg ...string) T {
	if !r.ok {
		panic(unwrapError(ErrUnwrapOk, msg))
	}
	return r.value
}

// UnwrapErr returns the error. On an Ok it panics with ErrUnwrapErr,
// or with an error carrying msg when one is given.
func (r Result[T]) UnwrapErr(msg ...string) error {
	if r.ok {
		panic(unwrapError(ErrUnwrapErr, msg))
	}
	return r.err
}

// UnwrapOr returns the success value or a default.
func (r Result[T]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// UnwrapOrElse returns the success value or computes a default from
// the error.
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// Value returns the success value and a boolean indicating success.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// Match executes one of two functions based on Result state.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	if r.ok {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

// MatchResult executes one of two functions and returns the result.
func MatchResult[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Map applies a function to the success value, leaving an Err
// unchanged.
func (r Result[T]) Map(fn func(T) T) Result[T] {
	if r.ok {
		return Ok(fn(r.value))
	}
	return r
}

// MapResult applies a transformation function to the success value.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.ok {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}

// MapErr applies a function to the error, leaving an Ok unchanged.
func (r Result[T]) MapErr(fn func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](fn(r.err))
}

// MapResultErr applies a function to the error.
func MapResultErr[T any](r Result[T], fn func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](fn(r.err))
}

// AndThen applies a function that returns a Result, leaving an Err
// unchanged. The function's result is passed through as-is, never
// re-wrapped.
func (r Result[T]) AndThen(fn func(T) Result[T]) Result[T] {
	if r.ok {
		return fn(r.value)
	}
	return r
}

// FlatMapResult applies a function that returns a Result.
func FlatMapResult[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// OrElse applies a function to the error, leaving an Ok unchanged. The
// function's result is passed through as-is.
func (r Result[T]) OrElse(fn func(error) Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return fn(r.err)
}

// AndResult returns other if r is successful, the original failure
// otherwise.
func AndResult[T, U any](r Result[T], other Result[U]) Result[U] {
	if r.ok {
		return other
	}
	return Err[U](r.err)
}

// OrResult returns r if successful, other otherwise.
func OrResult[T any](r Result[T], other Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return other
}

// String implements fmt.Stringer.
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
