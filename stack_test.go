// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package holey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackOf(t *testing.T) {
	assert := assert.New(t)

	one := StackOf(1)
	assert.Equal(1, Top(one))
	assert.True(Below(one).IsEmpty(), "a singleton has nothing below")
	assert.Equal(1, Length(one))

	s := StackOf(1, 2, 3)
	assert.Equal(1, Top(s))
	assert.Equal([]int{1, 2, 3}, StackToSlice(s))
	assert.Equal(3, Length(s))
}

func TestEmptyStack(t *testing.T) {
	assert := assert.New(t)

	s := EmptyStack[int]()
	assert.True(s.IsEmpty())
	assert.Equal(0, Length(s))
	assert.Nil(StackToSlice(s))
}

func TestStackFromSliceRoundTrip(t *testing.T) {
	assert := assert.New(t)

	xs := []string{"a", "b", "c"}
	assert.Equal(xs, StackToSlice(StackFromSlice(xs)))

	empty := StackFromSlice([]int{})
	assert.True(empty.IsEmpty(), "empty slice yields the empty state")
	assert.Equal(0, Length(empty))
}

func TestPush(t *testing.T) {
	assert := assert.New(t)

	base := StackFromSlice([]int{2, 3})
	s := Push(1, base)

	assert.Equal(1, Top(s))
	assert.Equal([]int{1, 2, 3}, StackToSlice(s))
	assert.Equal([]int{2, 3}, StackToSlice(base), "base is shared, not mutated")
}

func TestBelow(t *testing.T) {
	assert := assert.New(t)

	s := StackOf(1, 2, 3)
	assert.Equal([]int{2, 3}, StackToSlice(Below(s)))
}

func TestTopPanicsOnForgedZero(t *testing.T) {
	assert := assert.New(t)

	var forged Stack[Never, int]
	assert.Panics(func() { Top(forged) })
}

func TestAppendStack(t *testing.T) {
	assert := assert.New(t)

	left := StackOf(1, 2)
	right := StackFromSlice([]int{3, 4})

	joined := AppendStack(left, right)
	assert.Equal(1, Top(joined), "non-empty left operand keeps its guarantee")
	assert.Equal([]int{1, 2, 3, 4}, StackToSlice(joined))

	ontoEmpty := AppendStack(EmptyStack[int](), right)
	assert.Equal([]int{3, 4}, StackToSlice(ontoEmpty))

	withEmpty := AppendStack(left, EmptyStack[int]())
	assert.Equal([]int{1, 2}, StackToSlice(withEmpty))

	assert.Equal([]int{3, 4}, StackToSlice(right), "operands are shared, not mutated")
}

func TestConcatStack(t *testing.T) {
	assert := assert.New(t)

	ss := StackFromSlice([]Stack[Possibly, int]{
		StackFromSlice([]int{1, 2}),
		EmptyStack[int](),
		StackFromSlice([]int{3}),
		StackFromSlice([]int{4, 5}),
	})

	flat := ConcatStack(ss)
	assert.Equal([]int{1, 2, 3, 4, 5}, StackToSlice(flat),
		"each inner stack contributes exactly once, earliest first")

	assert.True(ConcatStack(EmptyStack[Stack[Possibly, int]]()).IsEmpty())

	allEmpty := StackFromSlice([]Stack[Possibly, int]{
		EmptyStack[int](), EmptyStack[int](),
	})
	assert.True(ConcatStack(allEmpty).IsEmpty())
}

func TestFilterStack(t *testing.T) {
	assert := assert.New(t)

	s := StackOf(1, 2, 3, 4)

	even := FilterStack(s, func(x int) bool { return x%2 == 0 })
	assert.Equal([]int{2, 4}, StackToSlice(even))

	none := FilterStack(s, func(int) bool { return false })
	assert.True(none.IsEmpty(), "filtering may remove every element")
}

func TestFilterMapStack(t *testing.T) {
	assert := assert.New(t)

	s := StackOf(1, 2, 3, 4, 5)
	halves := FilterMapStack(s, func(x int) Maybe[Possibly, int] {
		return FromStandard(x/2, x%2 == 0)
	})

	assert.Equal([]int{1, 2}, StackToSlice(halves), "empty per-element results are dropped")
}

func TestMapStack(t *testing.T) {
	assert := assert.New(t)

	s := StackOf(1, 2, 3)
	doubled := MapStack(s, func(x int) int { return x * 2 })

	assert.Equal(2, Top(doubled), "marker preserved: Top applies without a check")
	assert.Equal([]int{2, 4, 6}, StackToSlice(doubled))

	empty := MapStack(EmptyStack[int](), func(x int) int { return x * 2 })
	assert.True(empty.IsEmpty())
}

func TestMapTopMapBelow(t *testing.T) {
	assert := assert.New(t)

	s := StackOf(1, 2, 3)
	negate := func(x int) int { return -x }

	assert.Equal([]int{-1, 2, 3}, StackToSlice(MapTop(s, negate)))
	assert.Equal([]int{1, -2, -3}, StackToSlice(MapBelow(s, negate)))

	empty := EmptyStack[int]()
	assert.True(MapTop(empty, negate).IsEmpty())
	assert.True(MapBelow(empty, negate).IsEmpty())
}

func TestFoldStack(t *testing.T) {
	assert := assert.New(t)

	s := StackOf("a", "b", "c")
	cat := func(acc, x string) string { return acc + x }

	assert.Equal("abc", FoldStack(s, "", FirstToLast, cat))
	assert.Equal("cba", FoldStack(s, "", LastToFirst, cat))
	assert.Equal("seed", FoldStack(EmptyStack[string](), "seed", FirstToLast, cat))
}

func TestReduceStack(t *testing.T) {
	assert := assert.New(t)

	s := StackOf("a", "b", "c")
	cat := func(acc, x string) string { return acc + x }

	assert.Equal("abc", ReduceStack(s, FirstToLast, cat),
		"top seeds the accumulator going forward")
	assert.Equal("cba", ReduceStack(s, LastToFirst, cat),
		"last element seeds the accumulator going backward")
	assert.Equal("x", ReduceStack(StackOf("x"), FirstToLast, cat))
}
