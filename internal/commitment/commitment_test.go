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

package commitment

import (
	"bytes"
	"testing"
)

func TestCommitDeterministic(t *testing.T) {
	supersketches := [][]byte{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}

	c1, err := Commit(supersketches)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	c2, err := Commit(supersketches)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if !bytes.Equal(c1, c2) {
		t.Fatal("Commit is not deterministic for identical input")
	}
}

func TestCommitDiffersOnChangedInput(t *testing.T) {
	a, err := Commit([][]byte{{1, 2, 3}})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	b, err := Commit([][]byte{{1, 2, 4}})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("Commit should differ when the underlying supersketches differ")
	}
}

func TestCommitEmpty(t *testing.T) {
	if _, err := Commit(nil); err != nil {
		t.Fatalf("Commit(nil): %v", err)
	}
}
