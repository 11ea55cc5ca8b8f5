// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package holey provides emptiness-typed optional values, persistent stacks,
// and a list zipper with holes in Go.
//
// The core idea is a two-state sum type carrying a type-level emptiness
// marker. [Maybe] is either Empty or Filled; the marker parameter records
// whether the empty state is reachable, letting the compiler statically
// distinguish "may be empty" from "known non-empty" with no runtime
// representation difference.
//
// # Design Philosophy
//
// holey provides:
//   - Minimal but complete optional, sequence, and zipper types
//   - Phantom marker parameters for compile-time emptiness proofs
//   - Persistent immutable values with structural sharing throughout
//
// # Emptiness Markers
//
// The package uses zero-sized marker types as phantom type parameters:
//
//   - [Possibly]: the value may be in the empty state
//   - [Never]: the value is statically known to be non-empty
//   - [Emptiness]: the constraint over both markers
//
// Operations whose precondition is "must be non-empty" accept only the Never
// instantiation ([Value], [Top], [Current]); a caller holding a
// possibly-empty value cannot compile the call. Never-marked values come only
// from the constructors that prove the guarantee ([Filled], [StackOf],
// [Push], [Only], [Zipper.Plug]). [AsPossibly] broadens in the sound
// direction.
//
// # Optional Values
//
// [Maybe] is the optional core:
//
//   - [Empty], [Filled]: Constructors
//   - [Map]: Apply a function to the payload, preserving the marker
//   - [Map2]: Combine two payloads; empty if either operand is (left checked first)
//   - [AndThen]: Monadic bind — sequence operations that may signal absence
//   - [Value]: Extract from a statically non-empty optional, no check needed
//   - [WithFallback]: Payload or a lazily computed default
//   - [Maybe.Get], [FromStandard]: Conversion to and from Go's native
//     comma-ok optional at integration boundaries
//   - [Maybe.IsFilled], [Maybe.IsEmpty]: Predicates
//
// # Stacks
//
// [Stack] is an optional whose payload, when filled, is a [Stacked] cons
// cell of (top, below) — a non-empty-aware persistent sequence. Cells are
// immutable and structurally shared; [Push] is O(1) and never copies.
//
//   - [EmptyStack], [StackOf], [StackFromSlice]: Constructors
//   - [Top], [Below]: Head and tail of a statically non-empty stack
//   - [Push]: Cons; the result is statically non-empty
//   - [Length]: Element count, O(n)
//   - [AppendStack]: Concatenation, preserving the left operand's guarantee
//   - [ConcatStack]: Flatten a stack of stacks, earliest elements first
//   - [FilterStack], [FilterMapStack]: Keep matching elements; filtering can
//     remove everything, so the result is always marked Possibly
//   - [MapStack], [MapTop], [MapBelow]: Positional transforms preserving the marker
//   - [FoldStack]: Linear reduction in a [Direction] from an initial value
//   - [ReduceStack]: Reduction seeded by the element at the starting end
//
// # Zipper
//
// [Zipper] is a sequence with a focus that points at an item or at a hole
// between items. The focus is itself a [Maybe], so the zipper's focus kind
// is the focus marker: Zipper[Never, A] statically focuses an item and
// [Current] needs no check, Zipper[Possibly, A] may focus a hole. The
// flattening invariant reverse(before) ++ focus ++ after holds after every
// operation.
//
// Construction:
//
//   - [EmptyZipper]: No items, focused on the only hole
//   - [Only]: One item, focused on it
//   - [ZipperFromSlice]: All items in after, focused on the leading hole
//
// Navigation — absence ("no such position") is an empty [Maybe], never a
// panic:
//
//   - [Zipper.Next], [Zipper.Previous]: Step to the adjacent item
//   - [NextHole], [PreviousHole]: Step from an item onto the adjacent hole
//   - [Zipper.First], [Zipper.Last]: Jump to the boundary items
//   - [Zipper.BeforeFirst], [Zipper.AfterLast]: Focus the boundary holes
//   - [Zipper.FindForward], [Zipper.FindBackward]: Linear search from the
//     current position, testing the focused item first
//
// Editing — the focus never moves, and its kind is preserved unless the edit
// itself changes it:
//
//   - [Zipper.Plug]: Fill or replace the focus; result statically item-focused
//   - [Zipper.Remove]: Open a hole at the focus
//   - [Zipper.InsertBefore], [Zipper.InsertAfter]: O(1) adjacent insert
//   - [Zipper.SqueezeInBefore], [Zipper.SqueezeInAfter]: O(k) adjacent splice
//   - [Zipper.Append], [Zipper.Prepend]: Attach at the structure's ends
//
// Transforms and flattening:
//
//   - [MapZipper]: Transform every element
//   - [MapParts], [PartsMap]: Role-aware per-region transforms
//   - [Zipper.MapCurrent], [Zipper.MapBefore], [Zipper.MapAfter]: Region-local
//   - [Zipper.ToSlice]: Flatten to a native slice, losing the markers
//   - [JoinParts]: Flatten to a [Stack], keeping the focus marker as the
//     result's non-emptiness guarantee
//
// # Purity
//
// Every operation is a total pure function producing a new value. There is
// no I/O, no shared mutable state, and nothing to synchronize: concurrent
// reads of the same value are free.
//
// The only panics in the package guard forged zero values — a
// var-constructed Maybe[Never, A] claims a guarantee no constructor issued —
// and fail fast in [Value], [Top], [Current] and [ReduceStack].
//
// # Example
//
//	greeting := holey.Only("hello").
//		Append([]string{"world"})
//	withHole := holey.NextHole(greeting)
//	plugged := withHole.Plug("holey")
//	_ = plugged.ToSlice() // ["hello", "holey", "world"]
package holey
