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

// Assigner solves a rectangular linear-assignment problem on a
// DistanceMatrix: a permutation of columns minimizing the sum of
// row/assigned-column costs. The only externally visible output is
// RowInd, where RowInd[i] is the column assigned to row i.
//
// No library in the retrieval pack implements linear-assignment
// solving (the teacher's dependencies are all elliptic-curve/hashing,
// and nothing else in the pack touches combinatorial optimization), so
// this is a from-scratch exact O(n³) solver — the complexity bound
// §4.6 allows.
type Assigner interface {
	Solve(d *DistanceMatrix) ([]int, error)
}

type hungarianAssigner struct{}

// NewAssigner returns the default exact Assigner.
func NewAssigner() Assigner { return hungarianAssigner{} }

func (hungarianAssigner) Solve(d *DistanceMatrix) ([]int, error) {
	return solveAssignment(d), nil
}

// solveAssignment is the classic O(n³) shortest-augmenting-path
// Hungarian algorithm with row/column potentials, applied to the
// square (n1+n2)×(n1+n2) matrix. Rows and columns are treated 1-based
// internally (0 is the "unassigned" sentinel) and translated back to
// 0-based indices on return.
func solveAssignment(d *DistanceMatrix) []int {
	n := d.size()
	const inf = int64(1) << 62

	u := make([]int64, n+1)
	v := make([]int64, n+1)
	p := make([]int, n+1) // p[j] = row currently assigned to column j
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]int64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := int64(d.at(i0-1, j-1)) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	rowInd := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] > 0 {
			rowInd[p[j]-1] = j - 1
		}
	}
	return rowInd
}
