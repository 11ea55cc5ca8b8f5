// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package holey

// Zipper navigation.
// Every operation is total: "no such position" is an empty [Maybe], never a
// panic or error. Successful moves land on an item, so the payload is always
// a statically item-focused zipper.

// Next moves the focus to the item after the current position.
// If the focus held an item it joins before; if it was a hole, the hole
// closes. Empty result when no item follows.
func (z Zipper[F, A]) Next() Maybe[Possibly, Zipper[Never, A]] {
	cell, ok := z.after.Get()
	if !ok {
		return Empty[Zipper[Never, A]]()
	}
	return filledAs[Possibly](Zipper[Never, A]{
		before: consMaybe(z.focus, z.before),
		focus:  Filled(cell.top),
		after:  cell.below,
	})
}

// Previous moves the focus to the item before the current position.
// Symmetric to [Zipper.Next]: an old item focus joins after. Empty result
// when no item precedes.
func (z Zipper[F, A]) Previous() Maybe[Possibly, Zipper[Never, A]] {
	cell, ok := z.before.Get()
	if !ok {
		return Empty[Zipper[Never, A]]()
	}
	return filledAs[Possibly](Zipper[Never, A]{
		before: cell.below,
		focus:  Filled(cell.top),
		after:  consMaybe(z.focus, z.after),
	})
}

// NextHole focuses the hole directly after the current item, which moves
// into before. Requires an item focus, so it always succeeds; a hole-focused
// zipper is rejected at compile time (the hole after a hole does not exist).
func NextHole[A any](z Zipper[Never, A]) Zipper[Possibly, A] {
	return Zipper[Possibly, A]{
		before: push(Value(z.focus), z.before),
		after:  z.after,
	}
}

// PreviousHole focuses the hole directly before the current item, which
// moves into after. Symmetric to [NextHole].
func PreviousHole[A any](z Zipper[Never, A]) Zipper[Possibly, A] {
	return Zipper[Possibly, A]{
		before: z.before,
		after:  push(Value(z.focus), z.after),
	}
}

// First moves the focus to the first item by draining before.
// Already-first and item-free zippers are returned unchanged, so the focus
// marker is preserved: an item focus can only move to another item.
func (z Zipper[F, A]) First() Zipper[F, A] {
	cell, ok := reverseStack(z.before).Get()
	if !ok {
		return z
	}
	return Zipper[F, A]{
		focus: filledAs[F](cell.top),
		after: AppendStack(cell.below, consMaybe(z.focus, z.after)),
	}
}

// Last moves the focus to the last item by draining after.
// Symmetric to [Zipper.First].
func (z Zipper[F, A]) Last() Zipper[F, A] {
	cell, ok := reverseStack(z.after).Get()
	if !ok {
		return z
	}
	return Zipper[F, A]{
		before: AppendStack(cell.below, consMaybe(z.focus, z.before)),
		focus:  filledAs[F](cell.top),
	}
}

// BeforeFirst focuses the hole preceding the first item; every item ends up
// in after. The result may focus a hole by construction, whatever the input
// marker was.
func (z Zipper[F, A]) BeforeFirst() Zipper[Possibly, A] {
	return Zipper[Possibly, A]{
		after: AppendStack(reverseStack(z.before), consMaybe(z.focus, z.after)),
	}
}

// AfterLast focuses the hole following the last item; every item ends up in
// before. Symmetric to [Zipper.BeforeFirst].
func (z Zipper[F, A]) AfterLast() Zipper[Possibly, A] {
	return Zipper[Possibly, A]{
		before: AppendStack(reverseStack(z.after), consMaybe(z.focus, z.before)),
	}
}

// FindForward returns the zipper focused on the first item at or after the
// current position satisfying pred. The current item, when focused, is
// tested first; a hole focus starts the scan at the next item. Linear scan,
// empty result when exhausted.
func (z Zipper[F, A]) FindForward(pred func(A) bool) Maybe[Possibly, Zipper[Never, A]] {
	if v, ok := z.focus.Get(); ok && pred(v) {
		return filledAs[Possibly](Zipper[Never, A]{
			before: z.before,
			focus:  Filled(v),
			after:  z.after,
		})
	}
	next := z.Next()
	for {
		zi, ok := next.Get()
		if !ok {
			return Empty[Zipper[Never, A]]()
		}
		if pred(Current(zi)) {
			return filledAs[Possibly](zi)
		}
		next = zi.Next()
	}
}

// FindBackward is [Zipper.FindForward] scanning towards the first item.
func (z Zipper[F, A]) FindBackward(pred func(A) bool) Maybe[Possibly, Zipper[Never, A]] {
	if v, ok := z.focus.Get(); ok && pred(v) {
		return filledAs[Possibly](Zipper[Never, A]{
			before: z.before,
			focus:  Filled(v),
			after:  z.after,
		})
	}
	prev := z.Previous()
	for {
		zi, ok := prev.Get()
		if !ok {
			return Empty[Zipper[Never, A]]()
		}
		if pred(Current(zi)) {
			return filledAs[Possibly](zi)
		}
		prev = zi.Previous()
	}
}
