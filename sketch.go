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
	"encoding/binary"
	"io"
	"math/rand"
	"sort"

	"github.com/codahale/kt128"
)

// HashSize is the fixed fingerprint length, in bytes, for every node
// admitted into a whitelist.
const HashSize = 16

// Fingerprints maps a node's pre-order id (Tree.ID) to its
// HashSize-byte fingerprint for a single round.
type Fingerprints map[int][]byte

// nodeSample is one weighted byte pool a node contributes to its
// parent's sampling: weight is the subtree size backing it (0 means
// "not sampled"), bytes is always exactly HashSize long when weight>0.
type nodeSample struct {
	weight int
	bytes  []byte
}

// Sketch computes one round of locality-sensitive fingerprints for
// tree, seeded by seed, over the given whitelist. It is deterministic
// in (tree, seed, whitelist) and never errors: an empty token, zero
// children, and all-zero role vectors are all ordinary inputs.
func Sketch(tree *Tree, seed int64, whitelist *Whitelist) Fingerprints {
	out := make(Fingerprints, whitelist.Len())
	sketchNode(tree.Root, tree, seed, whitelist, out)
	return out
}

func sketchNode(n Node, tree *Tree, seed int64, whitelist *Whitelist, out Fingerprints) nodeSample {
	id := tree.ID(n)
	self := sketchSelf(n, id, whitelist)

	children := n.Children()
	if len(children) == 0 {
		if self.weight > 0 {
			out[id] = self.bytes
		}
		return self
	}

	all := make([]nodeSample, 0, len(children)+1)
	for _, c := range children {
		all = append(all, sketchNode(c, tree, seed, whitelist, out))
	}
	all = append(all, self) // own-sketch as an extra entry, per §4.1 step 1

	if !whitelist.Contains(id) {
		return nodeSample{}
	}

	entries := make([]nodeSample, 0, len(all))
	selfIdx := -1
	for _, e := range all {
		if e.weight <= 0 {
			continue
		}
		entries = append(entries, e)
	}
	// The own-sketch was appended last, so when its weight is positive
	// it is the last entry of the filtered slice; record that index so
	// the emergency path can force it back to 1 (see §4.1 step 5).
	if self.weight > 0 {
		selfIdx = len(entries) - 1
	}

	total := 0
	for _, e := range entries {
		total += e.weight
	}
	// Open question in the design notes: "all weights zero" is an
	// up-front special case, not something the balance pass should
	// ever see.
	if total == 0 {
		return nodeSample{}
	}

	sizes := initialAllocation(entries, total)
	delta := HashSize - sum(sizes)
	balanced, ok := balanceSizes(sizes, delta)
	if !ok {
		balanced = emergencyAllocation(len(entries), selfIdx, seed)
	}

	fingerprint := sampleBytes(entries, balanced, seed)
	out[id] = fingerprint
	return nodeSample{weight: total, bytes: fingerprint}
}

// sketchSelf computes a node's own-sketch: a seeded 128-bit hash of
// its token. Roles pack into two 64-bit seeds, one byte per role:
// seed1 holds roles[0:4], seed2 holds roles[4:8]; roles beyond the
// eighth are dropped.
func sketchSelf(n Node, id int, whitelist *Whitelist) nodeSample {
	if !n.StartPosition().HasPosition() || !whitelist.Contains(id) {
		return nodeSample{}
	}
	roles := n.Roles()
	var seed1, seed2 uint64
	for i := 0; i < 4 && i < len(roles); i++ {
		seed1 |= uint64(byte(roles[i])) << (8 * i)
	}
	for i := 0; i < 4 && i+4 < len(roles); i++ {
		seed2 |= uint64(byte(roles[i+4])) << (8 * i)
	}
	return nodeSample{weight: 1, bytes: hash128(n.Token(), seed1, seed2)}
}

// hash128 produces HashSize bytes of a token, seeded by (seed1, seed2),
// using KT128 (KangarooTwelve, RFC 9861) as a customized XOF — the
// seeds become the customization string, so distinct role-derived
// seeds always land on distinct output streams even for the same
// token, the property the original's farmhash.hash128withseed relied
// on.
func hash128(token []byte, seed1, seed2 uint64) []byte {
	var custom [16]byte
	binary.LittleEndian.PutUint64(custom[0:8], seed1)
	binary.LittleEndian.PutUint64(custom[8:16], seed2)

	h := kt128.NewCustom(custom[:])
	_, _ = h.Write(token)

	out := make([]byte, HashSize)
	_, _ = io.ReadFull(h, out)
	return out
}

// initialAllocation computes the proportional sample-slot allotment
// described in §4.1 step 3: sᵢ = max(1, ⌊wᵢ·HASH_SIZE/W⌋).
func initialAllocation(entries []nodeSample, total int) []int {
	sizes := make([]int, len(entries))
	for i, e := range entries {
		s := (e.weight * HashSize) / total
		if s < 1 {
			s = 1
		}
		sizes[i] = s
	}
	return sizes
}

// balanceSizes implements the §4.1 step 4 balance pass: entries are
// visited in a fixed order of decreasing initial size (ties broken by
// original position), and each eligible entry absorbs one unit of the
// remaining delta per visit, repeating full passes until delta
// reaches zero. An entry is eligible for a decrement only once its
// size is at least 2. If an entire pass makes no change, balancing has
// failed.
func balanceSizes(sizes []int, delta int) ([]int, bool) {
	if delta == 0 {
		return sizes, true
	}
	type slot struct{ size, idx int }
	order := make([]slot, len(sizes))
	for i, s := range sizes {
		order[i] = slot{s, i}
	}
	sort.SliceStable(order, func(a, b int) bool { return order[a].size > order[b].size })

	sign := 1
	if delta < 0 {
		sign = -1
	}
	for delta != 0 {
		progressed := false
		for _, s := range order {
			if sign < 0 && sizes[s.idx] < 2 {
				continue
			}
			sizes[s.idx] += sign
			delta -= sign
			progressed = true
			if delta == 0 {
				break
			}
		}
		if !progressed {
			return sizes, false
		}
	}
	return sizes, true
}

// emergencyAllocation is the §4.1 step 5 fallback for when the balance
// pass cannot converge: every size is zeroed, 15 distinct entries are
// chosen uniformly at random among the non-self entries using a PRNG
// seeded with the round's seed, and the own-sketch entry (if present
// in entries) is always included.
func emergencyAllocation(n int, selfIdx int, seed int64) []int {
	sizes := make([]int, n)
	pool := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if i == selfIdx {
			continue
		}
		pool = append(pool, i)
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	k := 15
	if k > len(pool) {
		k = len(pool)
	}
	for _, i := range pool[:k] {
		sizes[i] = 1
	}
	if selfIdx >= 0 {
		sizes[selfIdx] = 1
	}
	return sizes
}

// sampleBytes draws, for every entry with a positive allocation, that
// many bytes without replacement from the entry's sorted byte pool,
// using a PRNG re-seeded with seed for every single draw (see the
// design notes on PRNG reproducibility), then concatenates the draws
// in entry order.
func sampleBytes(entries []nodeSample, sizes []int, seed int64) []byte {
	out := make([]byte, 0, HashSize)
	for i, e := range entries {
		if sizes[i] <= 0 {
			continue
		}
		out = append(out, drawWithoutReplacement(e.bytes, sizes[i], seed)...)
	}
	return out
}

func drawWithoutReplacement(pool []byte, k int, seed int64) []byte {
	sorted := append([]byte(nil), pool...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	if k > len(sorted) {
		k = len(sorted)
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(sorted))

	out := make([]byte, k)
	for i := 0; i < k; i++ {
		out[i] = sorted[perm[i]]
	}
	return out
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
