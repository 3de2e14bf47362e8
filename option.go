package monads

import "fmt"

// Option represents an optional value that may or may not be present.
// It provides a type-safe alternative to nil pointers. The zero Option
// is None.
type Option[T any] struct {
	value T
	some  bool
}

// OptionTag identifies the variant held by an Option.
type OptionTag uint8

// Option variants.
const (
	TagNone OptionTag = iota
	TagSome
)

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr creates an Option from a pointer, treating nil as None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// Tag returns the variant discriminant.
func (o Option[T]) Tag() OptionTag {
	if o.some {
		return TagSome
	}
	return TagNone
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Unwrap returns the contained value. On None it panics with
// ErrUnwrapNone, or with an error carrying msg when one is given.
func (o Option[T]) Unwrap(msg ...string) T {
	if !o.some {
		panic(unwrapError(ErrUnwrapNone, msg))
	}
	return o.value
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.some {
		return o.value
	}
	return defaultValue
}

// UnwrapOrElse returns the contained value or computes a default.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.some {
		return o.value
	}
	return fn()
}

// Value returns the contained value and a boolean indicating presence.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.some
}

// Match executes one of two functions based on Option state.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.some {
		onSome(o.value)
	} else {
		onNone()
	}
}

// MatchOption executes one of two functions and returns the result.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// Map applies a function to the contained value if present.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if o.some {
		return Some(fn(o.value))
	}
	return None[T]()
}

// MapOption applies a transformation function to the contained value.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.some {
		return Some(fn(o.value))
	}
	return None[U]()
}

// AndThen applies a function that returns an Option. The function's
// result is passed through as-is, never re-wrapped.
func (o Option[T]) AndThen(fn func(T) Option[T]) Option[T] {
	if o.some {
		return fn(o.value)
	}
	return None[T]()
}

// FlatMapOption applies a function that returns an Option.
func FlatMapOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.some {
		return fn(o.value)
	}
	return None[U]()
}

// And returns optb if the Option contains a value, None otherwise.
func (o Option[T]) And(optb Option[T]) Option[T] {
	if o.some {
		return optb
	}
	return None[T]()
}

// AndOption returns optb if o contains a value, None otherwise.
func AndOption[T, U any](o Option[T], optb Option[U]) Option[U] {
	if o.some {
		return optb
	}
	return None[U]()
}

// Or returns the Option unchanged if it contains a value, optb otherwise.
func (o Option[T]) Or(optb Option[T]) Option[T] {
	if o.some {
		return o
	}
	return optb
}

// Filter returns None if the predicate returns false.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.some && predicate(o.value) {
		return o
	}
	return None[T]()
}

// ToPtr converts the Option to a pointer, nil for None.
func (o Option[T]) ToPtr() *T {
	if o.some {
		return &o.value
	}
	return nil
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
