// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package holey

// Non-empty-aware persistent sequence.
// A Stack is an optional value whose payload, when filled, is a cons cell of
// (top element, everything below). The emptiness marker of the outer Maybe is
// therefore the non-emptiness guarantee of the whole sequence: Stack[Never, A]
// has at least the top element.

// Stacked is the payload of a non-empty stack: the top element and the
// possibly-empty rest. Cells are immutable and structurally shared; [Push]
// never copies the cells below.
type Stacked[A any] struct {
	top   A
	below Stack[Possibly, A]
}

// Stack is a possibly-empty persistent sequence of A with an emptiness
// marker. It is an alias, not a wrapper: every [Maybe] operation and method
// applies directly (s.IsEmpty(), [AsPossibly], ...).
type Stack[E Emptiness, A any] = Maybe[E, *Stacked[A]]

// EmptyStack creates a stack with no elements.
func EmptyStack[A any]() Stack[Possibly, A] {
	return Stack[Possibly, A]{}
}

// StackOf creates a stack from a top element and the elements below it, in
// order. The result is statically non-empty. StackOf(x) is the singleton;
// StackOf(h, rest...) is construction from head and tail.
func StackOf[A any](top A, more ...A) Stack[Never, A] {
	below := EmptyStack[A]()
	for i := len(more) - 1; i >= 0; i-- {
		below = push(more[i], below)
	}
	return filledAs[Never](&Stacked[A]{top: top, below: below})
}

// StackFromSlice creates a stack holding the elements of xs in order.
// An empty or nil slice yields the empty stack.
func StackFromSlice[A any](xs []A) Stack[Possibly, A] {
	s := EmptyStack[A]()
	for i := len(xs) - 1; i >= 0; i-- {
		s = push(xs[i], s)
	}
	return s
}

// StackToSlice returns the elements top-first as a native slice.
// This is the boundary conversion out of the emptiness discipline; it loses
// the marker. O(n).
func StackToSlice[E Emptiness, A any](s Stack[E, A]) []A {
	if cell, ok := s.Get(); ok {
		out := make([]A, 0, Length(s))
		for ; ok; cell, ok = cell.below.Get() {
			out = append(out, cell.top)
		}
		return out
	}
	return nil
}

// Push lays v on top of s. O(1): the new cell shares s as its below.
// The result is statically non-empty whatever the marker of s was.
func Push[E Emptiness, A any](v A, s Stack[E, A]) Stack[Never, A] {
	return filledAs[Never](&Stacked[A]{top: v, below: AsPossibly(s)})
}

// Top returns the top element of a statically non-empty stack.
// The empty case is ruled out at compile time; a forged zero value panics,
// as with [Value].
func Top[A any](s Stack[Never, A]) A {
	return Value(s).top
}

// Below returns everything under the top element of a statically non-empty
// stack. The result may be empty (a singleton has nothing below).
func Below[A any](s Stack[Never, A]) Stack[Possibly, A] {
	return Value(s).below
}

// Length returns the number of elements. O(n): walks the cells.
func Length[E Emptiness, A any](s Stack[E, A]) int {
	n := 0
	for cell, ok := s.Get(); ok; cell, ok = cell.below.Get() {
		n++
	}
	return n
}

// AppendStack concatenates two stacks. O(|s|): the cells of s are rebuilt,
// the cells of t are shared. The marker of the left operand is preserved: a
// non-empty left operand proves the result non-empty. Broaden a Never-marked
// right operand with [AsPossibly].
func AppendStack[E Emptiness, A any](s Stack[E, A], t Stack[Possibly, A]) Stack[E, A] {
	cell, ok := s.Get()
	if !ok {
		return retag[E](t)
	}
	return retag[E](rebuildOnto(cell, t))
}

// ConcatStack flattens a stack of stacks, earliest elements first.
// Each inner stack contributes its elements exactly once, in order. The
// shared marker is preserved: a non-empty outer stack whose top inner stack
// is non-empty proves the result non-empty.
func ConcatStack[E Emptiness, A any](ss Stack[E, Stack[E, A]]) Stack[E, A] {
	var all []A
	for outer, ok := ss.Get(); ok; outer, ok = outer.below.Get() {
		for inner, innerOK := outer.top.Get(); innerOK; inner, innerOK = inner.below.Get() {
			all = append(all, inner.top)
		}
	}
	return retag[E](StackFromSlice(all))
}

// FilterStack keeps the elements satisfying pred, preserving order.
// Filtering can remove every element, so the result is always marked
// Possibly, whatever the input's guarantee was.
func FilterStack[E Emptiness, A any](s Stack[E, A], pred func(A) bool) Stack[Possibly, A] {
	var kept []A
	for cell, ok := s.Get(); ok; cell, ok = cell.below.Get() {
		if pred(cell.top) {
			kept = append(kept, cell.top)
		}
	}
	return StackFromSlice(kept)
}

// FilterMapStack applies f to every element, keeping the filled results in
// order and dropping the empty ones. Like [FilterStack], the result is always
// marked Possibly.
func FilterMapStack[E Emptiness, A, B any](s Stack[E, A], f func(A) Maybe[Possibly, B]) Stack[Possibly, B] {
	var kept []B
	for cell, ok := s.Get(); ok; cell, ok = cell.below.Get() {
		if v, filled := f(cell.top).Get(); filled {
			kept = append(kept, v)
		}
	}
	return StackFromSlice(kept)
}

// MapStack applies f to every element, preserving order and the emptiness
// marker: mapping cannot change how many elements there are.
func MapStack[E Emptiness, A, B any](s Stack[E, A], f func(A) B) Stack[E, B] {
	cell, ok := s.Get()
	if !ok {
		return Stack[E, B]{}
	}
	out := EmptyStack[B]()
	xs := StackToSlice(AsPossibly(s))
	for i := len(xs) - 1; i >= 1; i-- {
		out = push(f(xs[i]), out)
	}
	return filledAs[E](&Stacked[B]{top: f(cell.top), below: out})
}

// MapTop transforms only the top element. Empty stacks pass through
// unchanged; the marker is preserved.
func MapTop[E Emptiness, A any](s Stack[E, A], f func(A) A) Stack[E, A] {
	cell, ok := s.Get()
	if !ok {
		return s
	}
	return filledAs[E](&Stacked[A]{top: f(cell.top), below: cell.below})
}

// MapBelow transforms every element except the top. Empty stacks pass
// through unchanged; the marker is preserved.
func MapBelow[E Emptiness, A any](s Stack[E, A], f func(A) A) Stack[E, A] {
	cell, ok := s.Get()
	if !ok {
		return s
	}
	return filledAs[E](&Stacked[A]{top: cell.top, below: MapStack(cell.below, f)})
}

// Direction selects the scan order of a linear reduction.
type Direction int

const (
	// FirstToLast scans from the top element towards the last.
	FirstToLast Direction = iota
	// LastToFirst scans from the last element towards the top.
	LastToFirst
)

// FoldStack reduces the stack to a single value, starting from init and
// combining one element at a time in the given direction.
func FoldStack[E Emptiness, A, B any](s Stack[E, A], init B, dir Direction, f func(B, A) B) B {
	xs := StackToSlice(s)
	acc := init
	if dir == FirstToLast {
		for _, x := range xs {
			acc = f(acc, x)
		}
		return acc
	}
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(acc, xs[i])
	}
	return acc
}

// ReduceStack reduces a statically non-empty stack using the element at the
// starting end as the initial accumulator: the top for FirstToLast, the last
// element for LastToFirst. No separate initial value is needed because the
// type rules out emptiness.
func ReduceStack[A any](s Stack[Never, A], dir Direction, f func(A, A) A) A {
	xs := StackToSlice(AsPossibly(s))
	if len(xs) == 0 {
		panic("holey: ReduceStack on a zero-value Stack[Never, A]; use a constructor")
	}
	if dir == FirstToLast {
		acc := xs[0]
		for _, x := range xs[1:] {
			acc = f(acc, x)
		}
		return acc
	}
	acc := xs[len(xs)-1]
	for i := len(xs) - 2; i >= 0; i-- {
		acc = f(acc, xs[i])
	}
	return acc
}

// push is the internal cons that keeps the Possibly marker, used where a
// region of a larger structure stays possibly-empty by type.
func push[A any](v A, s Stack[Possibly, A]) Stack[Possibly, A] {
	return filledAs[Possibly](&Stacked[A]{top: v, below: s})
}

// retag rewrites the emptiness marker of a stack. Internal: sound only where
// the caller's own marker already proves the shape, e.g. preserving a left
// operand's guarantee through [AppendStack].
func retag[E Emptiness, A any](s Stack[Possibly, A]) Stack[E, A] {
	if cell, ok := s.Get(); ok {
		return filledAs[E](cell)
	}
	return Stack[E, A]{}
}

// reverseStack returns the elements in opposite order. O(n).
func reverseStack[A any](s Stack[Possibly, A]) Stack[Possibly, A] {
	out := EmptyStack[A]()
	for cell, ok := s.Get(); ok; cell, ok = cell.below.Get() {
		out = push(cell.top, out)
	}
	return out
}

// rebuildOnto copies the cells reachable from cell and attaches tail below
// the last copy, sharing tail's cells.
func rebuildOnto[A any](cell *Stacked[A], tail Stack[Possibly, A]) Stack[Possibly, A] {
	var spine []A
	for ok := true; ok; cell, ok = cell.below.Get() {
		spine = append(spine, cell.top)
	}
	out := tail
	for i := len(spine) - 1; i >= 0; i-- {
		out = push(spine[i], out)
	}
	return out
}
