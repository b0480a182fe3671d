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
	"encoding/json"
	"fmt"
	"io"
	"log"
)

// posTriple is the {"line", "col", "offset"} wire object for a Position.
type posTriple struct {
	Line   uint32 `json:"line"`
	Col    uint32 `json:"col"`
	Offset uint32 `json:"offset"`
}

func posOf(p Position) posTriple { return posTriple{Line: p.Line, Col: p.Col, Offset: p.Offset} }

// scriptEntry is one emitted script line. Kind is always present;
// Start/End are populated for add/delete, Before/After for modify.
//
// It marshals as the heterogeneous tuple §6 specifies, not as a JSON
// object: ["add", start, end], ["delete", start, end], or
// ["modify", {"before":[start,end],"after":[start,end]}], mirroring
// write_diff's plain-tuple output in the original implementation.
type scriptEntry struct {
	Kind   string
	Start  *posTriple
	End    *posTriple
	Before []posTriple
	After  []posTriple
}

func (e scriptEntry) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case "add", "delete":
		return json.Marshal([3]interface{}{e.Kind, e.Start, e.End})
	case "modify":
		return json.Marshal([2]interface{}{e.Kind, map[string][2]posTriple{
			"before": {e.Before[0], e.Before[1]},
			"after":  {e.After[0], e.After[1]},
		}})
	default:
		return nil, fmt.Errorf("treediff: unknown script entry kind %q", e.Kind)
	}
}

// Record is the full serialized diff output: the two raw sources, the
// edit script, and (optionally, see SPEC_FULL §11.2) commitments to
// each side's supersketches.
type Record struct {
	SrcBefore   string        `json:"src_before"`
	SrcAfter    string        `json:"src_after"`
	Script      []scriptEntry `json:"script"`
	Commitments *Commitments  `json:"commitments,omitempty"`
}

// Commitments carries the IPA commitments to both sides' supersketches
// when FingerprintCommitment is enabled. It is additive to the output
// format described in §6.
type Commitments struct {
	Before []byte `json:"commitment_before"`
	After  []byte `json:"commitment_after"`
}

// WriteScript filters ops per §6 (FILE-role and positionless nodes
// excluded, the latter logged), serializes the record as JSON, and
// writes it to w. fileRole is the taxonomy value for "FILE" in the
// caller's role numbering; the core treats roles as opaque integers.
func WriteScript(w io.Writer, srcBefore, srcAfter string, ops []Op, fileRole uint32, commitments *Commitments) error {
	entries := make([]scriptEntry, 0, len(ops))
	for _, op := range ops {
		entry, ok := compileEntry(op, fileRole)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}

	rec := Record{
		SrcBefore:   srcBefore,
		SrcAfter:    srcAfter,
		Script:      entries,
		Commitments: commitments,
	}
	enc := json.NewEncoder(w)
	return enc.Encode(rec)
}

func compileEntry(op Op, fileRole uint32) (scriptEntry, bool) {
	switch op.Kind {
	case OpDelete:
		if !admitted(op.Before, fileRole) {
			return scriptEntry{}, false
		}
		start, end := posOf(op.Before.StartPosition()), posOf(op.Before.EndPosition())
		return scriptEntry{Kind: "delete", Start: &start, End: &end}, true
	case OpAdd:
		if !admitted(op.After, fileRole) {
			return scriptEntry{}, false
		}
		start, end := posOf(op.After.StartPosition()), posOf(op.After.EndPosition())
		return scriptEntry{Kind: "add", Start: &start, End: &end}, true
	case OpModify:
		admitBefore, admitAfter := admitted(op.Before, fileRole), admitted(op.After, fileRole)
		if !admitBefore || !admitAfter {
			return scriptEntry{}, false
		}
		return scriptEntry{
			Kind:   "modify",
			Before: []posTriple{posOf(op.Before.StartPosition()), posOf(op.Before.EndPosition())},
			After:  []posTriple{posOf(op.After.StartPosition()), posOf(op.After.EndPosition())},
		}, true
	default:
		return scriptEntry{}, false
	}
}

// admitted reports whether n belongs in the emitted script: it must
// carry a position and must not carry the FILE role. A positionless
// node is logged as a warning, matching the reference writer's
// behavior.
func admitted(n Node, fileRole uint32) bool {
	if HasRole(n, fileRole) {
		return false
	}
	if !n.StartPosition().HasPosition() {
		log.Printf("treediff: node %q with %d children has no position, skipped", n.Token(), len(n.Children()))
		return false
	}
	return true
}
