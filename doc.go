// Package monads provides three generic container types for writing
// code that does not rely on nil checks or sentinel values for
// ordinary control flow:
//
//   - Option[T] holds a value that is either present (Some) or absent (None).
//   - Either[L, R] holds exactly one of two sides (Left or Right).
//   - Result[T] holds the outcome of a fallible operation (Ok or Err).
//
// All three are immutable value types: transformations return new
// values, and callbacks run synchronously with their panics propagated
// unmodified. Calling a panicking accessor on the wrong variant raises
// one of the package's Err* sentinel errors.
//
// Type-preserving transformations are methods. Go methods cannot
// introduce type parameters, so type-changing forms are standalone
// functions such as MapOption, FlatMapResult, and MatchEither.
package monads
