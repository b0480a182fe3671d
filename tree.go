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

// Tree assigns a stable pre-order integer id to every node of a parsed
// AST, once, the way the design notes prescribe: later stages key
// their maps off this id rather than off the Node value directly, so
// that iteration order stays reproducible across hashing rounds.
type Tree struct {
	Root   Node
	NLines int

	ids   map[Node]int
	nodes []Node
}

// Index walks root in pre-order and builds a Tree over it. nlines is
// the number of lines in the corresponding source text, used to size
// the LineIndex built from this tree.
func Index(root Node, nlines int) *Tree {
	t := &Tree{Root: root, NLines: nlines, ids: make(map[Node]int)}
	t.walk(root)
	return t
}

func (t *Tree) walk(n Node) {
	id := len(t.nodes)
	t.nodes = append(t.nodes, n)
	t.ids[n] = id
	for _, c := range n.Children() {
		t.walk(c)
	}
}

// ID returns the pre-order id assigned to n. It panics if n is not
// part of this tree, mirroring an out-of-bounds slice access.
func (t *Tree) ID(n Node) int {
	id, ok := t.ids[n]
	if !ok {
		panic("treediff: node is not part of this tree")
	}
	return id
}

// NodeAt returns the node with the given pre-order id.
func (t *Tree) NodeAt(id int) Node { return t.nodes[id] }

// Len returns the total number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Nodes returns the tree's nodes in pre-order; index i is NodeAt(i).
func (t *Tree) Nodes() []Node { return t.nodes }
