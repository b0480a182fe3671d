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

import "bytes"

// OpKind distinguishes the three edit-script operation shapes.
type OpKind int

const (
	OpDelete OpKind = iota
	OpAdd
	OpModify
)

func (k OpKind) String() string {
	switch k {
	case OpDelete:
		return "delete"
	case OpAdd:
		return "add"
	case OpModify:
		return "modify"
	default:
		return "unknown"
	}
}

// Op is one edit-script entry. Before is nil for OpAdd, After is nil for
// OpDelete; both are set for OpModify.
type Op struct {
	Kind   OpKind
	Before Node
	After  Node
}

// thresholdDivisor is the HASH_SIZE/2 factor from §4.7's deletion rule.
const thresholdDivisor = HashSize / 2

// CompileScript classifies every before/after pairing named by rowInd
// into delete/add/modify operations, per §4.7. seq1 and seq2 are the
// whitelist node-id orderings BuildDistance used to produce rowInd and
// the supersketches; tree1/tree2 resolve those ids back to Nodes.
//
// rounds is S, the number of hashing rounds the distance matrix and
// supersketches were built over; it scales the deletion threshold and
// must match the value passed to BuildDistance.
func CompileScript(tree1 *Tree, seq1 []int, super1 Supersketches, tree2 *Tree, seq2 []int, super2 Supersketches, d *DistanceMatrix, rowInd []int, rounds int) []Op {
	n1, n2 := len(seq1), len(seq2)
	threshold := int32(thresholdDivisor * rounds)

	matchedAfter := make([]bool, n2) // after-index -> claimed by a non-deleted before-index
	var ops []Op

	for i := 0; i < n1; i++ {
		j := rowInd[i]
		before := tree1.NodeAt(seq1[i])

		if j < n1 || d.at(i, j) > threshold {
			ops = append(ops, Op{Kind: OpDelete, Before: before})
			continue
		}

		k := j - n1
		after := tree2.NodeAt(seq2[k])
		matchedAfter[k] = true

		if bytes.Equal(super1[i], super2[k]) {
			continue // exact match: unchanged, no operation emitted
		}
		ops = append(ops, Op{Kind: OpModify, Before: before, After: after})
	}

	for k := 0; k < n2; k++ {
		if !matchedAfter[k] {
			ops = append(ops, Op{Kind: OpAdd, After: tree2.NodeAt(seq2[k])})
		}
	}
	return ops
}
