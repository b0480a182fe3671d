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
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DistanceMatrix is the dense (n1+n2)×(n1+n2) assignment cost matrix.
// Rows/columns [0,n1) are before-nodes, [n1,n1+n2) are after-nodes;
// the diagonal-adjacent rectangular blocks carry the real matching
// cost, the rest are dummy deletion/insertion slots.
type DistanceMatrix struct {
	n1, n2 int
	data   []int32
}

func newDistanceMatrix(n1, n2, rounds int) *DistanceMatrix {
	size := n1 + n2
	d := &DistanceMatrix{n1: n1, n2: n2, data: make([]int32, size*size)}

	dummyCost := int32(2 * HashSize * rounds)
	for i := range d.data {
		d.data[i] = dummyCost
	}
	realCost := int32(HashSize * rounds)
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			d.set(i, n1+j, realCost)
			d.set(n1+j, i, realCost)
		}
	}
	return d
}

func (d *DistanceMatrix) size() int             { return d.n1 + d.n2 }
func (d *DistanceMatrix) at(i, j int) int32     { return d.data[i*d.size()+j] }
func (d *DistanceMatrix) set(i, j int, v int32) { d.data[i*d.size()+j] = v }
func (d *DistanceMatrix) add(i, j int, v int32) { d.data[i*d.size()+j] += v }

// addReal applies a symmetric delta to the real before/after block and
// its transpose, keeping D[i,j] == D[j,i] as §3 requires.
func (d *DistanceMatrix) addReal(i, j int, delta int32) {
	d.add(i, d.n1+j, delta)
	d.add(d.n1+j, i, delta)
}

// Supersketches holds, for every whitelisted node in IDs() order, the
// concatenation of its per-round fingerprints (length HashSize*rounds).
type Supersketches [][]byte

// roundDelta is one round's contribution: the real-block deltas (dense
// n1×n2, row-major) and the round's fingerprints for both sides, in
// whitelist-IDs order. Rounds accumulate independently so the
// hashing pass can run concurrently (see §5) and are combined by the
// caller afterwards, in round order, so Supersketches stays a
// reproducible concatenation regardless of goroutine scheduling.
type roundDelta struct {
	deltas []int32
	fp1    [][]byte
	fp2    [][]byte
}

// BuildDistance runs `rounds` independent hashing rounds over the two
// whitelisted trees, accumulating pairwise byte-overlap distances into
// a DistanceMatrix, and returns it alongside each side's supersketches.
// Rounds are parallelized across up to `workers` goroutines (GOMAXPROCS
// if workers <= 0); the distance accumulation itself stays
// deterministic because each round's delta is computed into its own
// buffer and summed, in round order, only after every round completes.
func BuildDistance(ctx context.Context, tree1 *Tree, whitelist1 *Whitelist, tree2 *Tree, whitelist2 *Whitelist, rounds, workers int) (*DistanceMatrix, Supersketches, Supersketches, error) {
	seq1, seq2 := whitelist1.IDs(), whitelist2.IDs()
	n1, n2 := len(seq1), len(seq2)

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]roundDelta, rounds)
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)

	for round := 0; round < rounds; round++ {
		round := round
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-sem }()

			results[round] = hashRound(tree1, whitelist1, seq1, tree2, whitelist2, seq2, round)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	dist := newDistanceMatrix(n1, n2, rounds)
	super1 := make(Supersketches, n1)
	super2 := make(Supersketches, n2)
	for _, res := range results {
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if delta := res.deltas[i*n2+j]; delta != 0 {
					dist.addReal(i, j, delta)
				}
			}
		}
		for i := 0; i < n1; i++ {
			super1[i] = append(super1[i], res.fp1[i]...)
		}
		for j := 0; j < n2; j++ {
			super2[j] = append(super2[j], res.fp2[j]...)
		}
	}
	return dist, super1, super2, nil
}

// hashRound computes one round's fingerprints on both sides and the
// byte-overlap delta it contributes to the real distance block: for
// every before-index i, for every byte in map1[seq1[i]] counted with
// multiplicity, D[i, n1+j] drops by one for every after-index j whose
// fingerprint contains that byte value at least once.
func hashRound(tree1 *Tree, whitelist1 *Whitelist, seq1 []int, tree2 *Tree, whitelist2 *Whitelist, seq2 []int, seed int) roundDelta {
	map1 := Sketch(tree1, int64(seed), whitelist1)
	map2 := Sketch(tree2, int64(seed), whitelist2)

	n1, n2 := len(seq1), len(seq2)
	fp1 := make([][]byte, n1)
	for i, id := range seq1 {
		fp1[i] = map1[id]
	}
	fp2 := make([][]byte, n2)
	for j, id := range seq2 {
		fp2[j] = map2[id]
	}

	var byteMatchesAfter [256][]int
	for j, fp := range fp2 {
		var seen [256]bool
		for _, b := range fp {
			if !seen[b] {
				seen[b] = true
				byteMatchesAfter[b] = append(byteMatchesAfter[b], j)
			}
		}
	}

	deltas := make([]int32, n1*n2)
	for i, fp := range fp1 {
		for _, b := range fp { // with multiplicity, unlike byteMatchesAfter
			for _, j := range byteMatchesAfter[b] {
				deltas[i*n2+j]--
			}
		}
	}
	return roundDelta{deltas: deltas, fp1: fp1, fp2: fp2}
}
