package result

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestResultMapPreservesStructure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Map on Ok returns Ok(fn(value))", prop.ForAll(
		func(n int) bool {
			r := Ok(n)
			fn := func(x int) int { return x * 2 }
			mapped := Map(r, fn)
			return mapped.IsOk() && mapped.Unwrap() == fn(n)
		},
		gen.Int(),
	))

	properties.Property("Map on Err returns Err", prop.ForAll(
		func(msg string) bool {
			err := errors.New(msg)
			r := Err[int](err)
			fn := func(x int) int { return x * 2 }
			mapped := Map(r, fn)
			return mapped.IsErr() && mapped.UnwrapErr() == err
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestResultFlatMapMonadLaw(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Left identity: FlatMap(Ok(a), f) == f(a)
	properties.Property("left identity law", prop.ForAll(
		func(n int) bool {
			f := func(x int) Result[int] { return Ok(x * 2) }
			left := FlatMap(Ok(n), f)
			right := f(n)
			return left.IsOk() == right.IsOk() &&
				(!left.IsOk() || left.Unwrap() == right.Unwrap())
		},
		gen.Int(),
	))

	// Right identity: FlatMap(m, Ok) == m
	properties.Property("right identity law", prop.ForAll(
		func(n int) bool {
			m := Ok(n)
			result := FlatMap(m, func(x int) Result[int] { return Ok(x) })
			return result.IsOk() && result.Unwrap() == n
		},
		gen.Int(),
	))

	// Associativity: FlatMap(FlatMap(m, f), g) == FlatMap(m, x => FlatMap(f(x), g))
	properties.Property("associativity law", prop.ForAll(
		func(n int) bool {
			m := Ok(n)
			f := func(x int) Result[int] { return Ok(x + 1) }
			g := func(x int) Result[int] { return Ok(x * 2) }

			left := FlatMap(FlatMap(m, f), g)
			right := FlatMap(m, func(x int) Result[int] { return FlatMap(f(x), g) })

			return left.IsOk() == right.IsOk() &&
				(!left.IsOk() || left.Unwrap() == right.Unwrap())
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestResultBasicOperations(t *testing.T) {
	t.Run("Ok creates successful result", func(t *testing.T) {
		r := Ok(42)
		if !r.IsOk() {
			t.Error("expected IsOk to be true")
		}
		if r.IsErr() {
			t.Error("expected IsErr to be false")
		}
		if r.Unwrap() != 42 {
			t.Errorf("expected 42, got %d", r.Unwrap())
		}
	})

	t.Run("Err creates failed result", func(t *testing.T) {
		err := errors.New("test error")
		r := Err[int](err)
		if r.IsOk() {
			t.Error("expected IsOk to be false")
		}
		if !r.IsErr() {
			t.Error("expected IsErr to be true")
		}
		if r.UnwrapErr() != err {
			t.Errorf("expected %v, got %v", err, r.UnwrapErr())
		}
	})

	t.Run("UnwrapOr returns default on error", func(t *testing.T) {
		r := Err[int](errors.New("error"))
		if r.UnwrapOr(100) != 100 {
			t.Error("expected default value")
		}
	})

	t.Run("UnwrapOr returns value on success", func(t *testing.T) {
		r := Ok(42)
		if r.UnwrapOr(100) != 42 {
			t.Error("expected actual value")
		}
	})

	t.Run("free predicates agree with methods", func(t *testing.T) {
		r := Ok(42)
		if !IsOk(r) || IsErr(r) {
			t.Error("expected IsOk")
		}
	})
}

func TestMapErr(t *testing.T) {
	t.Run("transforms the error", func(t *testing.T) {
		r := MapErr(Err[int](errors.New("bad")), func(err error) error {
			return errors.New("wrapped: " + err.Error())
		})
		if r.UnwrapErr().Error() != "wrapped: bad" {
			t.Errorf("unexpected error: %v", r.UnwrapErr())
		}
	})

	t.Run("leaves Ok unchanged", func(t *testing.T) {
		r := MapErr(Ok(42), func(err error) error { return errors.New("replaced") })
		if !r.IsOk() || r.Unwrap() != 42 {
			t.Error("expected Ok unchanged")
		}
	})
}

func TestMatch(t *testing.T) {
	t.Run("returns the Ok branch result", func(t *testing.T) {
		v := Match(Ok(5),
			func(x int) string { return "ok" },
			func(err error) string { return err.Error() },
		)
		if v != "ok" {
			t.Errorf("expected ok, got %s", v)
		}
	})

	t.Run("returns the Err branch result", func(t *testing.T) {
		v := Match(Err[int](errors.New("boom")),
			func(x int) string { return "ok" },
			func(err error) string { return err.Error() },
		)
		if v != "boom" {
			t.Errorf("expected boom, got %s", v)
		}
	})
}

func TestTry(t *testing.T) {
	t.Run("Try wraps successful function", func(t *testing.T) {
		r := Try(func() (int, error) { return 42, nil })
		if !r.IsOk() || r.Unwrap() != 42 {
			t.Error("expected Ok(42)")
		}
	})

	t.Run("Try wraps failed function", func(t *testing.T) {
		err := errors.New("failed")
		r := Try(func() (int, error) { return 0, err })
		if !r.IsErr() || r.UnwrapErr() != err {
			t.Error("expected Err")
		}
	})
}
