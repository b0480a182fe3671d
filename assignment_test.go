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

import "testing"

func TestSolveAssignmentPrefersRealMatch(t *testing.T) {
	// One before-node, one after-node: the real cost (16) of matching
	// them must beat the dummy cost (32) of matching each to its own
	// padding slot.
	d := newDistanceMatrix(1, 1, 1)

	rowInd, err := NewAssigner().Solve(d)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if rowInd[0] != 1 || rowInd[1] != 0 {
		t.Fatalf("rowInd = %v, want [1 0] (real match preferred over dummy)", rowInd)
	}
}

func TestSolveAssignmentIsAPermutation(t *testing.T) {
	d := newDistanceMatrix(3, 2, 2)
	rowInd, err := NewAssigner().Solve(d)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	seen := make(map[int]bool, len(rowInd))
	for _, j := range rowInd {
		if seen[j] {
			t.Fatalf("rowInd %v is not a permutation: column %d repeats", rowInd, j)
		}
		seen[j] = true
	}
	if len(seen) != d.size() {
		t.Fatalf("rowInd covers %d columns, want %d", len(seen), d.size())
	}
}

func TestSolveAssignmentMinimizesTotalCost(t *testing.T) {
	d := newDistanceMatrix(2, 2, 1)
	// Make node 0-before match node 1-after for free, forcing the
	// solver away from the naive identity permutation.
	d.set(0, 2+1, 0)
	d.set(2+1, 0, 0)

	rowInd, err := NewAssigner().Solve(d)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if rowInd[0] != 3 {
		t.Fatalf("rowInd[0] = %d, want 3 (the zero-cost match)", rowInd[0])
	}
}
