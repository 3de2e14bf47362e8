// Package option provides backward compatibility aliases.
// Deprecated: Use github.com/gibbz00/monads instead.
package option

import "github.com/gibbz00/monads"

// Option is an alias for monads.Option.
// Deprecated: Use monads.Option instead.
type Option[T any] = monads.Option[T]

// Some creates a Some value.
// Deprecated: Use monads.Some instead.
func Some[T any](value T) Option[T] {
	return monads.Some(value)
}

// None creates a None value.
// Deprecated: Use monads.None instead.
func None[T any]() Option[T] {
	return monads.None[T]()
}

// IsSome returns true if the Option contains a value.
// Deprecated: Use Option.IsSome instead.
func IsSome[T any](o Option[T]) bool {
	return o.IsSome()
}

// IsNone returns true if the Option is empty.
// Deprecated: Use Option.IsNone instead.
func IsNone[T any](o Option[T]) bool {
	return o.IsNone()
}

// Map applies a transformation function to the contained value.
// Deprecated: Use monads.MapOption instead.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	return monads.MapOption(o, fn)
}

// FlatMap applies a function that returns an Option.
// Deprecated: Use monads.FlatMapOption instead.
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	return monads.FlatMapOption(o, fn)
}

// Match executes one of two functions and returns the result.
// Deprecated: Use monads.MatchOption instead.
func Match[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	return monads.MatchOption(o, onSome, onNone)
}

// Zip combines two Options into an Option of a Pair.
// Deprecated: Use monads.ZipOption instead.
func Zip[A, B any](a Option[A], b Option[B]) Option[monads.Pair[A, B]] {
	return monads.ZipOption(a, b)
}

// Unzip splits an Option of a Pair into two Options.
// Deprecated: Use monads.UnzipOption instead.
func Unzip[A, B any](o Option[monads.Pair[A, B]]) (Option[A], Option[B]) {
	return monads.UnzipOption(o)
}

// FromPtr creates an Option from a pointer, treating nil as None.
// Deprecated: Use monads.FromPtr instead.
func FromPtr[T any](ptr *T) Option[T] {
	return monads.FromPtr(ptr)
}
