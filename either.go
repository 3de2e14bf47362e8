package monads

import "fmt"

// Either represents a value of one of two possible types, with no
// built-in bias toward either side. The side not in use stays zero so
// that two Eithers built from the same side compare equal with ==.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// EitherTag identifies the variant held by an Either.
type EitherTag uint8

// Either variants.
const (
	TagLeft EitherTag = iota
	TagRight
)

// Left creates an Either with a left value.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value, isRight: false}
}

// Right creates an Either with a right value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// Tag returns the variant discriminant.
func (e Either[L, R]) Tag() EitherTag {
	if e.isRight {
		return TagRight
	}
	return TagLeft
}

// IsLeft returns true if the Either contains a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if the Either contains a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left projects the left side into an Option: Some for a Left, None
// for a Right.
func (e Either[L, R]) Left() Option[L] {
	if e.isRight {
		return None[L]()
	}
	return Some(e.left)
}

// Right projects the right side into an Option: Some for a Right, None
// for a Left.
func (e Either[L, R]) Right() Option[R] {
	if e.isRight {
		return Some(e.right)
	}
	return None[R]()
}

// Unwrap returns the value held by whichever side is present. It never
// panics; the caller recovers the static type with an assertion. Use
// UnwrapLeft or UnwrapRight for the side-checked forms.
func (e Either[L, R]) Unwrap() any {
	if e.isRight {
		return e.right
	}
	return e.left
}

// UnwrapLeft returns the left value or panics with ErrUnwrapLeft.
func (e Either[L, R]) UnwrapLeft() L {
	if e.isRight {
		panic(ErrUnwrapLeft)
	}
	return e.left
}

// UnwrapRight returns the right value or panics with ErrUnwrapRight.
func (e Either[L, R]) UnwrapRight() R {
	if !e.isRight {
		panic(ErrUnwrapRight)
	}
	return e.right
}

// UnwrapLeftOr returns the left value or a default.
func (e Either[L, R]) UnwrapLeftOr(defaultValue L) L {
	if !e.isRight {
		return e.left
	}
	return defaultValue
}

// UnwrapRightOr returns the right value or a default.
func (e Either[L, R]) UnwrapRightOr(defaultValue R) R {
	if e.isRight {
		return e.right
	}
	return defaultValue
}

// Match executes one of two functions based on Either state.
func (e Either[L, R]) Match(onLeft func(L), onRight func(R)) {
	if e.isRight {
		onRight(e.right)
	} else {
		onLeft(e.left)
	}
}

// MatchEither executes one of two functions and returns the result.
func MatchEither[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapLeft applies a function to the left value, leaving a Right
// unchanged.
func (e Either[L, R]) MapLeft(fn func(L) L) Either[L, R] {
	if e.isRight {
		return e
	}
	return Left[L, R](fn(e.left))
}

// MapRight applies a function to the right value, leaving a Left
// unchanged.
func (e Either[L, R]) MapRight(fn func(R) R) Either[L, R] {
	if e.isRight {
		return Right[L, R](fn(e.right))
	}
	return e
}

// MapEitherLeft applies a transformation function to the left value.
func MapEitherLeft[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	if !e.isRight {
		return Left[U, R](fn(e.left))
	}
	return Right[U, R](e.right)
}

// MapEitherRight applies a transformation function to the right value.
func MapEitherRight[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L, U](fn(e.right))
	}
	return Left[L, U](e.left)
}

// LeftAndThen applies a function that returns an Either, leaving a
// Right unchanged. The function's result is passed through as-is,
// never re-wrapped.
func (e Either[L, R]) LeftAndThen(fn func(L) Either[L, R]) Either[L, R] {
	if e.isRight {
		return e
	}
	return fn(e.left)
}

// RightAndThen applies a function that returns an Either, leaving a
// Left unchanged.
func (e Either[L, R]) RightAndThen(fn func(R) Either[L, R]) Either[L, R] {
	if e.isRight {
		return fn(e.right)
	}
	return e
}

// FlatMapEitherLeft applies a function that returns an Either.
func FlatMapEitherLeft[L, R, U any](e Either[L, R], fn func(L) Either[U, R]) Either[U, R] {
	if !e.isRight {
		return fn(e.left)
	}
	return Right[U, R](e.right)
}

// FlatMapEitherRight applies a function that returns an Either.
func FlatMapEitherRight[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	if e.isRight {
		return fn(e.right)
	}
	return Left[L, U](e.left)
}

// Swap exchanges the sides, turning a Left into a Right and vice versa.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// String implements fmt.Stringer.
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}
