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
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeEmpty(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte{}, 0644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

func TestLocateSequenceFiles(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "seq1")

	writeEmpty(t, prefix+"_before_001.pb")
	writeEmpty(t, prefix+"_after_001.pb")
	writeEmpty(t, prefix+"_before_001.src")
	writeEmpty(t, prefix+"_after_001.src")

	files, err := LocateSequenceFiles(prefix)
	if err != nil {
		t.Fatalf("LocateSequenceFiles: %v", err)
	}
	if files.BeforeAST == "" || files.AfterAST == "" || files.BeforeSrc == "" || files.AfterSrc == "" {
		t.Fatalf("unexpected empty path in %+v", files)
	}
}

func TestLocateSequenceFilesMissing(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "seq1")

	_, err := LocateSequenceFiles(prefix)
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("err = %v, want ErrInputNotFound", err)
	}
}

func TestLocateSequenceFilesAmbiguous(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "seq1")

	writeEmpty(t, prefix+"_before_001.pb")
	writeEmpty(t, prefix+"_before_002.pb")
	writeEmpty(t, prefix+"_after_001.pb")
	writeEmpty(t, prefix+"_before_001.src")
	writeEmpty(t, prefix+"_after_001.src")

	_, err := LocateSequenceFiles(prefix)
	if !errors.Is(err, ErrAmbiguousInput) {
		t.Fatalf("err = %v, want ErrAmbiguousInput", err)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.hashRounds() != 10 {
		t.Fatalf("hashRounds() = %d, want 10", opts.hashRounds())
	}
	var zero Options
	if zero.hashRounds() != 10 {
		t.Fatalf("zero-value Options.hashRounds() = %d, want default 10", zero.hashRounds())
	}
}
