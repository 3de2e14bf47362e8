package monads

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
