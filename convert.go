package monads

// OkOr converts an Option to a Result, using the given error if None.
func OkOr[T any](o Option[T], err error) Result[T] {
	if o.some {
		return Ok(o.value)
	}
	return Err[T](err)
}

// EitherToResult converts Either[error, T] to Result[T], reading the
// left side as the failure.
func EitherToResult[T any](e Either[error, T]) Result[T] {
	if e.IsRight() {
		return Ok(e.UnwrapRight())
	}
	return Err[T](e.UnwrapLeft())
}

// ResultToEither converts Result[T] to Either[error, T].
func ResultToEither[T any](r Result[T]) Either[error, T] {
	if r.IsOk() {
		return Right[error, T](r.Unwrap())
	}
	return Left[error, T](r.UnwrapErr())
}
