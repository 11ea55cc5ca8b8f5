// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package holey

// Emptiness markers.
//
// Every container in this package carries an emptiness marker as its first
// type parameter. The marker has no runtime representation; it exists only so
// the compiler can tell "may be empty" apart from "known non-empty" and
// reject calls that require the stronger guarantee.

// Possibly marks a value that may be in the empty state.
// The zero value of any Possibly-marked container is its empty state.
type Possibly struct{}

// Never marks a value that is statically known to be non-empty.
// Never-marked values are produced only by the package's constructors
// ([Filled], [StackOf], [Push], [Only], [Zipper.Plug], ...); a zero value of
// a Never-marked type forges the guarantee and trips the fail-fast panics in
// [Value], [Top] and [Current].
type Never struct{}

// Emptiness is the constraint satisfied by the two marker types.
// Generic code that works for both markers abstracts over it:
//
//	func Describe[E holey.Emptiness](s holey.Stack[E, int]) string
type Emptiness interface{ Possibly | Never }
