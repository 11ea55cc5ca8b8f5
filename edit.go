// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package holey

// Zipper editing.
// Edits never move the focus. Single-element inserts and Plug/Remove are
// O(1); bulk splices are O(k) in the number of inserted elements, not in the
// size of the zipper.

// Plug sets the focus to the given item. It accepts any focus kind: plugging
// a hole fills it, plugging an item replaces it. The result is statically
// item-focused.
func (z Zipper[F, A]) Plug(v A) Zipper[Never, A] {
	return Zipper[Never, A]{before: z.before, focus: Filled(v), after: z.after}
}

// Remove sets the focus to a hole, dropping the focused item if there was
// one. The result is statically hole-capable.
func (z Zipper[F, A]) Remove() Zipper[Possibly, A] {
	return Zipper[Possibly, A]{before: z.before, after: z.after}
}

// InsertBefore inserts one element directly before the focus. The focus and
// its kind are unchanged.
func (z Zipper[F, A]) InsertBefore(v A) Zipper[F, A] {
	return Zipper[F, A]{before: push(v, z.before), focus: z.focus, after: z.after}
}

// InsertAfter inserts one element directly after the focus. The focus and
// its kind are unchanged.
func (z Zipper[F, A]) InsertAfter(v A) Zipper[F, A] {
	return Zipper[F, A]{before: z.before, focus: z.focus, after: push(v, z.after)}
}

// SqueezeInBefore splices a whole sequence directly before the focus,
// keeping its order. One structural splice, O(len(items)); the focus and its
// kind are unchanged.
func (z Zipper[F, A]) SqueezeInBefore(items []A) Zipper[F, A] {
	before := z.before
	for _, v := range items {
		before = push(v, before)
	}
	return Zipper[F, A]{before: before, focus: z.focus, after: z.after}
}

// SqueezeInAfter splices a whole sequence directly after the focus, keeping
// its order. Same contract as [Zipper.SqueezeInBefore].
func (z Zipper[F, A]) SqueezeInAfter(items []A) Zipper[F, A] {
	after := z.after
	for i := len(items) - 1; i >= 0; i-- {
		after = push(items[i], after)
	}
	return Zipper[F, A]{before: z.before, focus: z.focus, after: after}
}

// Append attaches items at the very end of the sequence, wherever the focus
// is. The focus position and kind are unchanged.
func (z Zipper[F, A]) Append(items []A) Zipper[F, A] {
	return Zipper[F, A]{
		before: z.before,
		focus:  z.focus,
		after:  AppendStack(z.after, StackFromSlice(items)),
	}
}

// Prepend attaches items at the very beginning of the sequence, wherever the
// focus is. The focus keeps pointing at the same item or hole.
func (z Zipper[F, A]) Prepend(items []A) Zipper[F, A] {
	return Zipper[F, A]{
		before: AppendStack(z.before, reverseStack(StackFromSlice(items))),
		focus:  z.focus,
		after:  z.after,
	}
}
