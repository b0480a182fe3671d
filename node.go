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

// Position is a point in source text. Line is 1-based; Line == 0 means
// "no position", per the external AST contract.
type Position struct {
	Line   uint32
	Col    uint32
	Offset uint32
}

// HasPosition reports whether p refers to an actual source location.
func (p Position) HasPosition() bool {
	return p.Line > 0
}

// Node is the external, immutable AST node contract this package
// consumes. The parser that produces the tree, and its role taxonomy,
// are both out of scope here (see §1 of the design).
//
// Implementations must be backed by a pointer type. Node identity in
// this package is the identity of the Go value itself (used as a map
// key during pre-order indexing, see Index): two distinct node
// instances are never considered the same node, even if structurally
// identical, exactly as the external contract requires.
type Node interface {
	// Token is the node's opaque source token; it may be empty.
	Token() []byte

	// Roles is the ordered sequence of small, non-negative role tags
	// describing the node's syntactic function. Only the first eight
	// contribute to its hash seed (see sketchSelf).
	Roles() []uint32

	// StartPosition and EndPosition delimit the node's source range.
	StartPosition() Position
	EndPosition() Position

	// Children is the node's ordered list of children.
	Children() []Node
}

// HasRole reports whether n carries the given role tag.
func HasRole(n Node, role uint32) bool {
	for _, r := range n.Roles() {
		if r == role {
			return true
		}
	}
	return false
}
