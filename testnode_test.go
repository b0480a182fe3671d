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

// testNode is a minimal pointer-backed Node implementation used across
// the test suite to build small ASTs by hand.
type testNode struct {
	token    string
	roles    []uint32
	start    Position
	end      Position
	children []*testNode
}

func (n *testNode) Token() []byte           { return []byte(n.token) }
func (n *testNode) Roles() []uint32         { return n.roles }
func (n *testNode) StartPosition() Position { return n.start }
func (n *testNode) EndPosition() Position   { return n.end }
func (n *testNode) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// leaf builds a positioned leaf node covering [line, line] with the
// given token text.
func leaf(token string, line int) *testNode {
	return &testNode{
		token: token,
		start: Position{Line: uint32(line), Col: 1, Offset: uint32(line * 10)},
		end:   Position{Line: uint32(line), Col: uint32(len(token) + 1), Offset: uint32(line*10 + len(token))},
	}
}

// branch builds a node covering the span of its children.
func branch(token string, children ...*testNode) *testNode {
	n := &testNode{token: token, children: children}
	if len(children) == 0 {
		return n
	}
	n.start = children[0].start
	n.end = children[len(children)-1].end
	return n
}

// lines renders a sequence of leaf tokens, one per line starting at 1,
// as both a tree and its backing source text.
func lines(tokens ...string) (*testNode, string) {
	children := make([]*testNode, len(tokens))
	for i, tok := range tokens {
		children[i] = leaf(tok, i+1)
	}
	root := branch("file", children...)
	src := ""
	for i, tok := range tokens {
		if i > 0 {
			src += "\n"
		}
		src += tok
	}
	return root, src
}
