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

import "fmt"

// ASTDecoder turns a serialized AST blob (the `*.pb` half of a
// sequence) into a Node tree plus the line count of its source. The
// wire format of that blob is deliberately outside this package's
// scope: the core operates on the Node interface, not on any one
// parser's bytes (see the external AST contract in §6). Callers that
// need cmd/treediff to do real decoding set this before invoking it.
var ASTDecoder func(blob []byte) (root Node, nlines int, err error)

// DecodeAST runs the configured ASTDecoder, wrapping its absence in
// ErrParse so the CLI's error path stays uniform.
func DecodeAST(blob []byte) (Node, int, error) {
	if ASTDecoder == nil {
		return nil, 0, fmt.Errorf("%w: no ASTDecoder configured", ErrParse)
	}
	root, nlines, err := ASTDecoder(blob)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return root, nlines, nil
}
