// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package holey

// Zipper transforms.
// Element-type-changing transforms are top-level functions (methods cannot
// introduce type parameters); shape, order and the focus marker are always
// preserved.

// MapZipper applies f to every element: before, the focused item if there is
// one, and after.
func MapZipper[F Emptiness, A, B any](z Zipper[F, A], f func(A) B) Zipper[F, B] {
	return Zipper[F, B]{
		before: MapStack(z.before, f),
		focus:  Map(z.focus, f),
		after:  MapStack(z.after, f),
	}
}

// PartsMap carries one transform per zipper region for [MapParts].
type PartsMap[A, B any] struct {
	Before  func(A) B
	Current func(A) B
	After   func(A) B
}

// MapParts applies three independent role-aware transforms to the three
// regions, e.g. rendering elements differently depending on their position
// relative to the focus.
func MapParts[F Emptiness, A, B any](z Zipper[F, A], parts PartsMap[A, B]) Zipper[F, B] {
	return Zipper[F, B]{
		before: MapStack(z.before, parts.Before),
		focus:  Map(z.focus, parts.Current),
		after:  MapStack(z.after, parts.After),
	}
}

// MapCurrent transforms only the focused item. A hole focus passes through
// unchanged.
func (z Zipper[F, A]) MapCurrent(f func(A) A) Zipper[F, A] {
	return Zipper[F, A]{before: z.before, focus: Map(z.focus, f), after: z.after}
}

// MapBefore transforms only the elements preceding the focus.
func (z Zipper[F, A]) MapBefore(f func(A) A) Zipper[F, A] {
	return Zipper[F, A]{before: MapStack(z.before, f), focus: z.focus, after: z.after}
}

// MapAfter transforms only the elements following the focus.
func (z Zipper[F, A]) MapAfter(f func(A) A) Zipper[F, A] {
	return Zipper[F, A]{before: z.before, focus: z.focus, after: MapStack(z.after, f)}
}
