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
	"log"
	"strings"

	"github.com/go-treediff/treediff/internal/commitment"
)

// Diff runs the full pipeline described in §3/§4: line-index both
// sides, adjust the raw line diff for duplicate-block ambiguity,
// restrict each side to a whitelist of candidate nodes, sketch and
// accumulate distances over opts.HashRounds rounds, solve the
// assignment, and compile the edit script. The before/after trees must
// already be indexed (Index) over the sources passed in.
func Diff(ctx context.Context, srcBefore string, treeBefore *Tree, srcAfter string, treeAfter *Tree, opts Options) ([]Op, *Commitments, error) {
	lineIndexBefore := NewLineIndex(treeBefore)
	lineIndexAfter := NewLineIndex(treeAfter)

	intervals := AdjustLineDiff(splitLines(srcBefore), splitLines(srcAfter), lineIndexAfter)
	whitelistBefore := Restrict(lineIndexBefore, true, intervals)
	whitelistAfter := Restrict(lineIndexAfter, false, intervals)

	log.Printf("treediff: nodes before: %d, nodes after: %d", whitelistBefore.Len(), whitelistAfter.Len())

	// §4.4 empty-whitelist short-circuit: no distance matrix is built,
	// and every node on the non-empty side becomes a bare add/delete.
	if whitelistBefore.Len() == 0 || whitelistAfter.Len() == 0 {
		ops := shortCircuitOps(treeBefore, whitelistBefore, treeAfter, whitelistAfter)
		return ops, nil, nil
	}

	rounds := opts.hashRounds()
	dist, super1, super2, err := BuildDistance(ctx, treeBefore, whitelistBefore, treeAfter, whitelistAfter, rounds, opts.Workers)
	if err != nil {
		return nil, nil, err
	}

	rowInd, err := NewAssigner().Solve(dist)
	if err != nil {
		return nil, nil, err
	}

	ops := CompileScript(treeBefore, whitelistBefore.IDs(), super1, treeAfter, whitelistAfter.IDs(), super2, dist, rowInd, rounds)
	logOpCounts(ops)

	var commitments *Commitments
	if opts.Commit {
		commitments, err = buildCommitments(super1, super2)
		if err != nil {
			return nil, nil, err
		}
	}
	return ops, commitments, nil
}

func shortCircuitOps(treeBefore *Tree, whitelistBefore *Whitelist, treeAfter *Tree, whitelistAfter *Whitelist) []Op {
	var ops []Op
	if whitelistBefore.Len() == 0 {
		for _, id := range whitelistAfter.IDs() {
			ops = append(ops, Op{Kind: OpAdd, After: treeAfter.NodeAt(id)})
		}
	} else {
		for _, id := range whitelistBefore.IDs() {
			ops = append(ops, Op{Kind: OpDelete, Before: treeBefore.NodeAt(id)})
		}
	}
	logOpCounts(ops)
	return ops
}

func logOpCounts(ops []Op) {
	var deleted, added, modified int
	for _, op := range ops {
		switch op.Kind {
		case OpDelete:
			deleted++
		case OpAdd:
			added++
		case OpModify:
			modified++
		}
	}
	log.Printf("treediff: deleted=%d added=%d modified=%d", deleted, added, modified)
}

func buildCommitments(super1, super2 Supersketches) (*Commitments, error) {
	before, err := commitment.Commit(super1)
	if err != nil {
		return nil, err
	}
	after, err := commitment.Commit(super2)
	if err != nil {
		return nil, err
	}
	return &Commitments{Before: before, After: after}, nil
}

// splitLines splits src into lines the way §2's line-oriented
// collaborators expect: no trailing empty element for a final newline.
func splitLines(src string) []string {
	if src == "" {
		return nil
	}
	lines := strings.Split(src, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
