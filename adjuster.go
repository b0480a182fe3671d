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

// Interval is an adjusted changed region, expressed as a half-open
// line range on each side: [StartBefore, EndBefore) before, and
// [StartAfter, EndAfter) after. Both bounds are 1-based, matching
// LineIndex.
type Interval struct {
	StartBefore, EndBefore int
	StartAfter, EndAfter   int
}

// rawInterval is one contiguous run of +/- lines from lineDiff, before
// any duplicate-block adjustment.
type rawInterval struct {
	add, rm                 []diffLine
	startBefore, endBefore  int
	startAfter, endAfter    int
}

// groupRawIntervals walks a symbol-level line diff, tracking 1-based
// before/after line cursors, and groups every run of +/- lines into a
// rawInterval.
func groupRawIntervals(diff []diffLine) []rawInterval {
	var intervals []rawInterval
	var add, rm []diffLine
	lineBefore, lineAfter := 1, 1
	startBefore, startAfter := -1, -1

	flush := func() {
		if len(add) == 0 && len(rm) == 0 {
			return
		}
		sb, sa := startBefore, startAfter
		if sb == -1 {
			sb = lineBefore
		}
		if sa == -1 {
			sa = lineAfter
		}
		intervals = append(intervals, rawInterval{
			add: add, rm: rm,
			startBefore: sb, endBefore: lineBefore,
			startAfter: sa, endAfter: lineAfter,
		})
		add, rm = nil, nil
		startBefore, startAfter = -1, -1
	}

	for _, d := range diff {
		switch d.marker {
		case markerAdd:
			if len(add) == 0 {
				startAfter = lineAfter
			}
			add = append(add, d)
			lineAfter++
		case markerDel:
			if len(rm) == 0 {
				startBefore = lineBefore
			}
			rm = append(rm, d)
			lineBefore++
		default:
			flush()
			lineBefore++
			lineAfter++
		}
	}
	flush()
	return intervals
}

// AdjustLineDiff produces the adjusted Interval list the Restrictor
// consumes, from a raw line-oriented diff of before/after and the
// after-side LineIndex. It corrects the "duplicated block" ambiguity a
// pure line diff can introduce: when a text diff could have placed an
// inserted block at more than one position inside a run of identical
// lines, it shifts the insertion window to align with node boundaries
// instead of splitting a node.
func AdjustLineDiff(before, after []string, afterIndex *LineIndex) []Interval {
	diff := lineDiff(before, after)
	raw := groupRawIntervals(diff)

	adjusted := make([]Interval, 0, len(raw))
	for _, iv := range raw {
		if len(iv.add) <= 1 && len(iv.rm) <= 1 {
			adjusted = append(adjusted, iv.interval())
			continue
		}

		neighbors := 0
		for neighbors < len(iv.add) {
			idx := iv.endAfter - 1 + neighbors // 0-based index of after[endAfter+neighbors]
			if idx < 0 || idx >= len(after) || after[idx] != iv.add[neighbors].text {
				break
			}
			neighbors++
		}
		if neighbors == 0 {
			adjusted = append(adjusted, iv.interval())
			continue
		}

		before1 := afterIndex.NodesInOpenInterval(iv.startAfter, iv.endAfter)
		after1 := afterIndex.NodesInOpenInterval(iv.startAfter+neighbors, iv.endAfter+neighbors)
		if before1.Count() == after1.Count() {
			adjusted = append(adjusted, iv.interval())
			continue
		}

		if iv.endBefore-iv.startBefore > 0 {
			adjusted = append(adjusted, Interval{
				StartBefore: iv.startBefore, EndBefore: iv.endBefore,
				StartAfter: iv.startAfter, EndAfter: iv.startAfter,
			})
		}
		endBefore := iv.endBefore + neighbors
		startAfter := iv.startAfter + neighbors
		endAfter := iv.endAfter + neighbors
		adjusted = append(adjusted, Interval{
			StartBefore: endBefore, EndBefore: endBefore,
			StartAfter: startAfter, EndAfter: endAfter,
		})
	}
	return adjusted
}

func (iv rawInterval) interval() Interval {
	return Interval{
		StartBefore: iv.startBefore, EndBefore: iv.endBefore,
		StartAfter: iv.startAfter, EndAfter: iv.endAfter,
	}
}
