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
	"fmt"
	"path/filepath"
	"runtime"
)

// Options configures a run of the diff pipeline end to end.
type Options struct {
	// HashRounds is S, the number of NodeSketcher rounds DistanceBuilder
	// runs. Must be positive; defaults to 10.
	HashRounds int

	// OutputPath is where SinkWriter writes the serialized record. An
	// empty value means "the caller provides its own io.Writer".
	OutputPath string

	// SequencePrefix names the sequence whose four input files
	// LocateSequenceFiles resolves. Nothing in this package reads the
	// field: LocateSequenceFiles takes the prefix as its argument, and
	// cmd/treediff passes its positional argument there directly.
	SequencePrefix string

	// Commit turns FingerprintCommitment on; the emitted record gains a
	// "commitments" field. Off by default: zero cost when unused.
	Commit bool

	// Workers bounds the goroutine pool DistanceBuilder uses to
	// parallelize hashing rounds. Non-positive means GOMAXPROCS.
	Workers int

	// FileRole is the taxonomy value for the "FILE" role in the
	// caller's role numbering; nodes carrying it are excluded from the
	// emitted script. The role taxonomy itself is opaque to this
	// package (see Node).
	FileRole uint32
}

// DefaultOptions returns the Options a bare invocation uses.
func DefaultOptions() Options {
	return Options{
		HashRounds: 10,
		Workers:    runtime.GOMAXPROCS(0),
	}
}

func (o Options) hashRounds() int {
	if o.HashRounds <= 0 {
		return 10
	}
	return o.HashRounds
}

// SequenceFiles is the resolved set of input paths a sequence prefix
// names: one AST blob and one source file per side.
type SequenceFiles struct {
	BeforeAST string
	AfterAST  string
	BeforeSrc string
	AfterSrc  string
}

// LocateSequenceFiles globs for `<prefix>_before_*.pb`,
// `<prefix>_after_*.pb`, `<prefix>_before_*.src`, `<prefix>_after_*.src`
// and requires exactly one match each, per §6's external file locator.
func LocateSequenceFiles(prefix string) (SequenceFiles, error) {
	beforeAST, err := globOne(prefix + "_before_*.pb")
	if err != nil {
		return SequenceFiles{}, err
	}
	afterAST, err := globOne(prefix + "_after_*.pb")
	if err != nil {
		return SequenceFiles{}, err
	}
	beforeSrc, err := globOne(prefix + "_before_*.src")
	if err != nil {
		return SequenceFiles{}, err
	}
	afterSrc, err := globOne(prefix + "_after_*.src")
	if err != nil {
		return SequenceFiles{}, err
	}
	return SequenceFiles{
		BeforeAST: beforeAST,
		AfterAST:  afterAST,
		BeforeSrc: beforeSrc,
		AfterSrc:  afterSrc,
	}, nil
}

func globOne(pattern string) (string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("treediff: glob %q: %w", pattern, err)
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, pattern)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s matched %d files", ErrAmbiguousInput, pattern, len(matches))
	}
}
