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

import "github.com/bits-and-blooms/bitset"

// LineIndex maps each 1-based source line to the set of node ids
// (Tree.ID) whose position range covers that line. Only nodes with a
// real start position contribute.
type LineIndex struct {
	tree  *Tree
	lines []*bitset.BitSet // index i holds line i+1
}

// NewLineIndex builds a LineIndex over every node in tree in a single
// pass, satisfying the "visit every node exactly once" requirement by
// reusing the pre-order node list Index already built.
func NewLineIndex(tree *Tree) *LineIndex {
	li := &LineIndex{
		tree:  tree,
		lines: make([]*bitset.BitSet, tree.NLines),
	}
	for i := range li.lines {
		li.lines[i] = bitset.New(uint(tree.Len()))
	}
	for id, n := range tree.Nodes() {
		start := n.StartPosition()
		if !start.HasPosition() {
			continue
		}
		end := n.EndPosition()
		for line := start.Line; line <= end.Line; line++ {
			if line < 1 || int(line) > tree.NLines {
				continue
			}
			li.lines[line-1].Set(uint(id))
		}
	}
	return li
}

// NodesOn returns the set of node ids covering the given 1-based line.
// Lines outside [1, NLines] have no coverage.
func (li *LineIndex) NodesOn(line int) *bitset.BitSet {
	if line < 1 || line > len(li.lines) {
		return bitset.New(uint(li.tree.Len()))
	}
	return li.lines[line-1]
}

// NodesInOpenInterval returns the node ids touching lines strictly
// inside the half-open interval [start, end), but not lines
// immediately outside it: starting from NodesOn(start), nodes also
// covering line start-1 are removed, the nodes covering each line in
// (start, end) are unioned in, and nodes also covering line end are
// removed. This isolates nodes whose coverage does not bleed into
// surrounding unchanged lines.
func (li *LineIndex) NodesInOpenInterval(start, end int) *bitset.BitSet {
	result := li.NodesOn(start).Clone()
	result.InPlaceDifference(li.NodesOn(start - 1))
	for line := start + 1; line < end; line++ {
		result.InPlaceUnion(li.NodesOn(line))
	}
	result.InPlaceDifference(li.NodesOn(end))
	return result
}
