package monads

// Pair groups two values of possibly different types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair creates a Pair from two values.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns both values of the Pair.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns a Pair with the values exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// ZipOption combines two Options into an Option of a Pair. The result
// is Some only when both inputs are Some.
func ZipOption[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if a.some && b.some {
		return Some(NewPair(a.value, b.value))
	}
	return None[Pair[A, B]]()
}

// UnzipOption splits an Option of a Pair into two Options.
func UnzipOption[A, B any](o Option[Pair[A, B]]) (Option[A], Option[B]) {
	if o.some {
		return Some(o.value.First), Some(o.value.Second)
	}
	return None[A](), None[B]()
}
