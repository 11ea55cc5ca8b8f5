// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package holey

// List zipper with holes.
// A Zipper is a sequence together with a focus that points either at an
// element (an item) or at a gap between elements (a hole). The marker F is
// the emptiness marker of the focus: Zipper[Never, A] is statically known to
// focus an item, Zipper[Possibly, A] may focus a hole.

// Zipper represents a focused sequence.
//
// before holds the elements preceding the focus nearest-first, after holds
// the elements following the focus nearest-first. The flattened sequence is
// always reverse(before) ++ focus ++ after; every operation maintains this.
// All regions are persistent: operations share unchanged cells and never
// mutate.
//
// The zero value of Zipper[Possibly, A] is the empty zipper: no elements,
// focused on the only hole.
type Zipper[F Emptiness, A any] struct {
	before Stack[Possibly, A]
	focus  Maybe[F, A]
	after  Stack[Possibly, A]
}

// EmptyZipper creates a zipper over no elements, focused on the single hole.
func EmptyZipper[A any]() Zipper[Possibly, A] {
	return Zipper[Possibly, A]{}
}

// Only creates a zipper over exactly one element, focused on it.
func Only[A any](v A) Zipper[Never, A] {
	return Zipper[Never, A]{focus: Filled(v)}
}

// ZipperFromSlice creates a zipper over the elements of xs, focused on the
// hole before the first element. Flattening it yields xs again.
func ZipperFromSlice[A any](xs []A) Zipper[Possibly, A] {
	return Zipper[Possibly, A]{after: StackFromSlice(xs)}
}

// Current returns the focused item. Only statically item-focused zippers are
// accepted; there is no runtime empty case to handle. Panics on a forged
// zero value, as with [Value].
func Current[A any](z Zipper[Never, A]) A {
	return Value(z.focus)
}

// AsPossibly broadens the focus marker to Possibly, forgetting a static
// item-focus guarantee. Always sound, same runtime representation; the
// counterpart of [AsPossibly] for zippers.
func (z Zipper[F, A]) AsPossibly() Zipper[Possibly, A] {
	return Zipper[Possibly, A]{before: z.before, focus: AsPossibly(z.focus), after: z.after}
}

// BeforeSlice returns the elements preceding the focus in original order.
func (z Zipper[F, A]) BeforeSlice() []A {
	return StackToSlice(reverseStack(z.before))
}

// AfterSlice returns the elements following the focus in original order.
func (z Zipper[F, A]) AfterSlice() []A {
	return StackToSlice(z.after)
}

// ToSlice flattens the zipper into a native slice in original order,
// discarding the focus position and all markers. O(n).
func (z Zipper[F, A]) ToSlice() []A {
	out := make([]A, 0, z.Len())
	out = append(out, z.BeforeSlice()...)
	if v, ok := z.focus.Get(); ok {
		out = append(out, v)
	}
	return append(out, z.AfterSlice()...)
}

// JoinParts flattens the zipper into a stack, keeping the guarantee the
// focus provides: an item-focused zipper flattens to a statically non-empty
// stack. A hole-focused zipper may flatten to nothing, so the result stays
// possibly-empty even when before or after happen to hold elements.
func JoinParts[F Emptiness, A any](z Zipper[F, A]) Stack[F, A] {
	joined := AppendStack(reverseStack(z.before), consMaybe(z.focus, z.after))
	return retag[F](joined)
}

// Len returns the number of items in the zipper. Holes do not count. O(n).
func (z Zipper[F, A]) Len() int {
	n := Length(z.before) + Length(z.after)
	if z.focus.IsFilled() {
		n++
	}
	return n
}

// consMaybe pushes the payload onto s if m is filled, else returns s.
func consMaybe[F Emptiness, A any](m Maybe[F, A], s Stack[Possibly, A]) Stack[Possibly, A] {
	if v, ok := m.Get(); ok {
		return push(v, s)
	}
	return s
}
