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

// lineMarker tags one entry of a symbol-level line diff, mirroring
// Python difflib.Differ's "+ ", "- ", "  " prefixes.
type lineMarker byte

const (
	markerCommon lineMarker = ' '
	markerAdd    lineMarker = '+'
	markerDel    lineMarker = '-'
)

// diffLine is one entry of a line-oriented diff: a marker plus the
// source line it refers to (without its trailing newline).
type diffLine struct {
	marker lineMarker
	text   string
}

// lineDiff computes a symbol-level diff of before and after, line by
// line, via a longest-common-subsequence backbone: every line in the
// LCS is emitted unchanged, everything between two LCS anchors is
// emitted first as deletions from before then as additions from
// after. This is the same shape of output as Python's difflib.Differ
// (without its "?" intraline hint lines, which nothing downstream of
// it needs).
func lineDiff(before, after []string) []diffLine {
	n, m := len(before), len(after)

	// lcs[i][j] = length of the LCS of before[i:] and after[j:].
	lcs := make([][]int32, n+1)
	for i := range lcs {
		lcs[i] = make([]int32, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if before[i] == after[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	out := make([]diffLine, 0, n+m)
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case before[i] == after[j]:
			out = append(out, diffLine{markerCommon, before[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			out = append(out, diffLine{markerDel, before[i]})
			i++
		default:
			out = append(out, diffLine{markerAdd, after[j]})
			j++
		}
	}
	for ; i < n; i++ {
		out = append(out, diffLine{markerDel, before[i]})
	}
	for ; j < m; j++ {
		out = append(out, diffLine{markerAdd, after[j]})
	}
	return out
}
