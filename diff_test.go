// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package treediff

import (
	"context"
	"testing"
)

// S1/S3: identical sources on both sides yield an empty script.
func TestDiffIdentityYieldsEmptyScript(t *testing.T) {
	root, src := lines("alpha", "beta", "gamma")
	tree1 := Index(root, 3)

	root2, _ := lines("alpha", "beta", "gamma")
	tree2 := Index(root2, 3)

	ops, commitments, err := Diff(context.Background(), src, tree1, src, tree2, DefaultOptions())
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(ops) != 0 {
		t.Fatalf("len(ops) = %d, want 0 for identical sources", len(ops))
	}
	if commitments != nil {
		t.Fatalf("commitments = %+v, want nil when Commit is false", commitments)
	}
}

// S2: an empty before-tree against a non-empty after-tree short-circuits
// into pure adds.
func TestDiffEmptyBeforeYieldsOnlyAdds(t *testing.T) {
	rootBefore := branch("file")
	treeBefore := Index(rootBefore, 0)

	rootAfter, srcAfter := lines("alpha", "beta")
	treeAfter := Index(rootAfter, 2)

	ops, _, err := Diff(context.Background(), "", treeBefore, srcAfter, treeAfter, DefaultOptions())
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(ops) == 0 {
		t.Fatal("expected at least one add operation")
	}
	for _, op := range ops {
		if op.Kind != OpAdd {
			t.Fatalf("unexpected op kind %v, want only adds", op.Kind)
		}
	}
}

func TestDiffDeterministic(t *testing.T) {
	rootBefore, srcBefore := lines("alpha", "beta", "gamma")
	rootAfter, srcAfter := lines("alpha", "beta_renamed", "gamma")
	treeBefore := Index(rootBefore, 3)
	treeAfter := Index(rootAfter, 3)

	opts := DefaultOptions()
	ops1, _, err := Diff(context.Background(), srcBefore, treeBefore, srcAfter, treeAfter, opts)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}

	rootBefore2, _ := lines("alpha", "beta", "gamma")
	rootAfter2, _ := lines("alpha", "beta_renamed", "gamma")
	treeBefore2 := Index(rootBefore2, 3)
	treeAfter2 := Index(rootAfter2, 3)
	ops2, _, err := Diff(context.Background(), srcBefore, treeBefore2, srcAfter, treeAfter2, opts)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}

	if len(ops1) != len(ops2) {
		t.Fatalf("non-deterministic op count: %d vs %d", len(ops1), len(ops2))
	}
	for i := range ops1 {
		if ops1[i].Kind != ops2[i].Kind {
			t.Fatalf("op %d kind differs: %v vs %v", i, ops1[i].Kind, ops2[i].Kind)
		}
	}
}
