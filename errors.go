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

import "errors"

// Only I/O and input-shape failures are errors; every other recoverable
// condition (empty whitelist, balance-pass failure, positionless or
// FILE-roled nodes) is ordinary control flow, not an error path.
var (
	// ErrInputNotFound is returned when a before/after source or AST
	// file named by a sequence prefix matches no file at all.
	ErrInputNotFound = errors.New("treediff: input file not found")

	// ErrAmbiguousInput is returned when a sequence prefix resolves to
	// more than one candidate file where exactly one was expected.
	ErrAmbiguousInput = errors.New("treediff: input file ambiguous")

	// ErrParse is returned when the AST binary blob could not be
	// decoded into a Node tree.
	ErrParse = errors.New("treediff: AST parse failure")
)
