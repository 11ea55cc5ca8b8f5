// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package holey

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlug(t *testing.T) {
	hole := NextHole(Only(1)).Append([]int{3})

	z := hole.Plug(2)
	if got := Current(z); got != 2 {
		t.Fatalf("Current = %d, want 2", got)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, z.ToSlice()); diff != "" {
		t.Fatalf("Plug into hole (-want +got):\n%s", diff)
	}

	// Plugging an item replaces it.
	replaced := Only(9).Plug(2)
	if diff := cmp.Diff([]int{2}, replaced.ToSlice()); diff != "" {
		t.Fatalf("Plug over item (-want +got):\n%s", diff)
	}
}

func TestRemove(t *testing.T) {
	z := Only(2).InsertBefore(1).InsertAfter(3)

	removed := z.Remove()
	if diff := cmp.Diff([]int{1, 3}, removed.ToSlice()); diff != "" {
		t.Fatalf("Remove (-want +got):\n%s", diff)
	}

	// Removing a hole is a no-op on the contents.
	again := removed.Remove()
	if diff := cmp.Diff([]int{1, 3}, again.ToSlice()); diff != "" {
		t.Fatalf("Remove on hole (-want +got):\n%s", diff)
	}
}

func TestInsertAroundFocus(t *testing.T) {
	z := Only(2)

	if diff := cmp.Diff([]int{1, 2}, z.InsertBefore(1).ToSlice()); diff != "" {
		t.Fatalf("InsertBefore (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 3}, z.InsertAfter(3).ToSlice()); diff != "" {
		t.Fatalf("InsertAfter (-want +got):\n%s", diff)
	}

	both := z.InsertBefore(1).InsertAfter(3)
	if got := Current(both); got != 2 {
		t.Fatalf("focus moved: Current = %d, want 2", got)
	}

	// Inserting around a hole keeps the hole focused.
	hole := NextHole(Only(1)).InsertAfter(2)
	if diff := cmp.Diff([]int{1, 2}, hole.ToSlice()); diff != "" {
		t.Fatalf("InsertAfter on hole (-want +got):\n%s", diff)
	}
	plugged := hole.Plug(9)
	if diff := cmp.Diff([]int{1, 9, 2}, plugged.ToSlice()); diff != "" {
		t.Fatalf("hole position must be preserved (-want +got):\n%s", diff)
	}
}

func TestSqueezeIn(t *testing.T) {
	z := Only(0)

	before := z.SqueezeInBefore([]int{-3, -2, -1})
	if diff := cmp.Diff([]int{-3, -2, -1, 0}, before.ToSlice()); diff != "" {
		t.Fatalf("SqueezeInBefore (-want +got):\n%s", diff)
	}

	after := z.SqueezeInAfter([]int{1, 2, 3})
	if diff := cmp.Diff([]int{0, 1, 2, 3}, after.ToSlice()); diff != "" {
		t.Fatalf("SqueezeInAfter (-want +got):\n%s", diff)
	}

	if got := Current(before); got != 0 {
		t.Fatalf("focus moved: Current = %d, want 0", got)
	}

	noop := z.SqueezeInBefore(nil).SqueezeInAfter([]int{})
	if diff := cmp.Diff([]int{0}, noop.ToSlice()); diff != "" {
		t.Fatalf("empty splice should be a no-op (-want +got):\n%s", diff)
	}
}

func TestAppendPrepend(t *testing.T) {
	z := Only(3).InsertBefore(2)

	appended := z.Append([]int{4, 5})
	if diff := cmp.Diff([]int{2, 3, 4, 5}, appended.ToSlice()); diff != "" {
		t.Fatalf("Append (-want +got):\n%s", diff)
	}
	if got := Current(appended); got != 3 {
		t.Fatalf("Append moved the focus: Current = %d, want 3", got)
	}

	prepended := z.Prepend([]int{0, 1})
	if diff := cmp.Diff([]int{0, 1, 2, 3}, prepended.ToSlice()); diff != "" {
		t.Fatalf("Prepend (-want +got):\n%s", diff)
	}
	if got := Current(prepended); got != 3 {
		t.Fatalf("Prepend moved the focus: Current = %d, want 3", got)
	}

	// Attaching at the ends happens past existing elements, not at the focus.
	deep := ZipperFromSlice([]int{1, 2, 3}).BeforeFirst().Append([]int{4})
	if diff := cmp.Diff([]int{1, 2, 3, 4}, deep.ToSlice()); diff != "" {
		t.Fatalf("Append at the structural end (-want +got):\n%s", diff)
	}
}

func TestEditsSharePersistently(t *testing.T) {
	base := Only(2).Append([]int{3, 4})

	_ = base.InsertBefore(1)
	_ = base.Remove()
	_ = base.SqueezeInAfter([]int{9})

	if diff := cmp.Diff([]int{2, 3, 4}, base.ToSlice()); diff != "" {
		t.Fatalf("edits must not mutate the source (-want +got):\n%s", diff)
	}
}
