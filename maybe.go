// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package holey

// Optional value core.
// Maybe[E, A] is a two-state container: Empty (no payload) or Filled (exactly
// one payload of type A). The marker E records at the type level whether the
// empty state is reachable.

// Maybe represents an optional value with a type-level emptiness marker.
//
// Maybe[Possibly, A] may be empty; Maybe[Never, A] is statically non-empty
// and accepted by [Value]. Exactly one state is active at any time. All
// operations are total and pure: they never mutate, never fail, and return a
// new value.
type Maybe[E Emptiness, A any] struct {
	filled bool
	value  A
}

// Empty creates an optional value in the empty state.
func Empty[A any]() Maybe[Possibly, A] {
	return Maybe[Possibly, A]{}
}

// Filled creates an optional value holding v.
// The result carries the Never marker: the compiler knows it cannot be empty,
// so it is accepted anywhere a possibly-empty optional is (via [AsPossibly])
// and by [Value] directly.
func Filled[A any](v A) Maybe[Never, A] {
	return Maybe[Never, A]{filled: true, value: v}
}

// FromStandard constructs an optional from Go's native comma-ok form.
// This is the boundary conversion for callers entering the emptiness
// discipline; the inverse is [Maybe.Get].
func FromStandard[A any](v A, ok bool) Maybe[Possibly, A] {
	if !ok {
		return Maybe[Possibly, A]{}
	}
	return Maybe[Possibly, A]{filled: true, value: v}
}

// AsPossibly broadens the emptiness marker to Possibly.
// Upcasting from Never is always sound; the runtime representation is
// unchanged. The reverse direction does not exist: the only way to obtain a
// Never-marked value is through a constructor that proves it.
func AsPossibly[E Emptiness, A any](m Maybe[E, A]) Maybe[Possibly, A] {
	return Maybe[Possibly, A]{filled: m.filled, value: m.value}
}

// IsFilled returns true if the optional holds a value.
func (m Maybe[E, A]) IsFilled() bool {
	return m.filled
}

// IsEmpty returns true if the optional is in the empty state.
func (m Maybe[E, A]) IsEmpty() bool {
	return !m.filled
}

// Get returns the payload and true, or zero and false.
// This is the conversion to Go's native optional representation (comma-ok),
// discarding the emptiness marker. Use it at integration boundaries only;
// inside the discipline, [Value] on a Never-marked optional needs no check.
func (m Maybe[E, A]) Get() (A, bool) {
	if m.filled {
		return m.value, true
	}
	var zero A
	return zero, false
}

// Value extracts the payload of a statically non-empty optional.
// Only Maybe[Never, A] is accepted, so the empty case is ruled out at compile
// time. Panics if called on a forged zero value, which can only arise from
// bypassing the constructors with var or a composite literal.
func Value[A any](m Maybe[Never, A]) A {
	if !m.filled {
		panic("holey: Value on a zero-value Maybe[Never, A]; use a constructor")
	}
	return m.value
}

// WithFallback returns the payload if filled, otherwise the lazily computed
// default. The fallback function runs only when actually needed, deferring
// its cost.
func WithFallback[A any](m Maybe[Possibly, A], fallback func() A) A {
	if m.filled {
		return m.value
	}
	return fallback()
}

// Map applies a pure function to the payload if filled.
// Empty input passes through unchanged; the emptiness marker is preserved, so
// mapping a known non-empty optional yields a known non-empty optional.
func Map[E Emptiness, A, B any](m Maybe[E, A], f func(A) B) Maybe[E, B] {
	if !m.filled {
		return Maybe[E, B]{}
	}
	return Maybe[E, B]{filled: true, value: f(m.value)}
}

// Map2 applies f to both payloads if both optionals are filled.
// The left operand is checked first: if either is empty the result is empty
// and f is never called. Both operands share one marker; broaden a mixed pair
// with [AsPossibly] before combining.
func Map2[E Emptiness, A, B, C any](f func(A, B) C, ma Maybe[E, A], mb Maybe[E, B]) Maybe[E, C] {
	if !ma.filled {
		return Maybe[E, C]{}
	}
	if !mb.filled {
		return Maybe[E, C]{}
	}
	return Maybe[E, C]{filled: true, value: f(ma.value, mb.value)}
}

// AndThen sequences two optional computations (monadic bind).
// If m is filled, f runs on the payload and its result — possibly empty — is
// returned directly. If m is empty, f is skipped and emptiness propagates.
func AndThen[E Emptiness, A, B any](m Maybe[E, A], f func(A) Maybe[E, B]) Maybe[E, B] {
	if !m.filled {
		return Maybe[E, B]{}
	}
	return f(m.value)
}

// filledAs constructs a filled optional with an arbitrary marker.
// Internal: callers outside the package obtain Never-marked values only
// through [Filled] and the other smart constructors.
func filledAs[E Emptiness, A any](v A) Maybe[E, A] {
	return Maybe[E, A]{filled: true, value: v}
}
