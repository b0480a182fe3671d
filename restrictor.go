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

import "github.com/bits-and-blooms/bitset"

// Whitelist is the set of node ids (Tree.ID) retained after line-diff
// restriction; only these nodes receive fingerprints.
type Whitelist struct {
	bits *bitset.BitSet
	ids  []int // stable ascending order, derived once from bits
}

func newWhitelist(bits *bitset.BitSet) *Whitelist {
	w := &Whitelist{bits: bits}
	w.ids = make([]int, 0, bits.Count())
	for id, ok := bits.NextSet(0); ok; id, ok = bits.NextSet(id + 1) {
		w.ids = append(w.ids, int(id))
	}
	return w
}

// Contains reports whether id is in the whitelist.
func (w *Whitelist) Contains(id int) bool { return w.bits.Test(uint(id)) }

// IDs returns the whitelist's node ids in stable ascending order.
func (w *Whitelist) IDs() []int { return w.ids }

// Len returns the number of whitelisted nodes.
func (w *Whitelist) Len() int { return len(w.ids) }

// Restrict derives a side's whitelist: the union, over every adjusted
// interval that applies to that side, of the nodes the LineIndex
// reports as touching it.
func Restrict(index *LineIndex, before bool, intervals []Interval) *Whitelist {
	union := bitset.New(uint(index.tree.Len()))
	for _, iv := range intervals {
		var start, end int
		if before {
			start, end = iv.StartBefore, iv.EndBefore
		} else {
			start, end = iv.StartAfter, iv.EndAfter
		}
		union.InPlaceUnion(index.NodesInOpenInterval(start, end))
	}
	return newWhitelist(union)
}
