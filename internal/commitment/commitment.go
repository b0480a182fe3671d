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

// Package commitment binds a whitelist's supersketches to a single IPA
// vector commitment, the way the teacher's verkle leaf nodes commit to
// their 256-wide value vector. It is an integrity anchor, not a
// zero-knowledge proof: nothing here opens a multiproof or attests to
// how the commitment was derived beyond "these bytes, in this order".
package commitment

import (
	"io"
	"sync"

	"github.com/codahale/kt128"
	"github.com/crate-crypto/go-ipa/ipa"

	"github.com/go-treediff/treediff/crypto"
)

// NodeWidth is the fixed polynomial width every commitment folds into,
// mirroring the teacher's own verkle leaf vector width.
const NodeWidth = 256

// config lazily builds and caches the IPA settings, exactly as the
// teacher's GetConfig caches its precomputed Lagrange points: the SRS
// setup is expensive and every commitment in a process should share it.
type config struct {
	once sync.Once
	conf *ipa.IPAConfig
	err  error
}

func (c *config) settings() (*ipa.IPAConfig, error) {
	c.once.Do(func() {
		c.conf, c.err = crypto.NewIPASettings()
	})
	return c.conf, c.err
}

var shared config

// Commit folds supersketches (one entry per whitelisted node, in the
// stable ids order BuildDistance produced them in) into a NodeWidth
// polynomial and commits to it, returning the commitment's uncompressed
// serialization. Entries past NodeWidth are dropped; a short whitelist
// leaves the remaining slots at the zero element.
func Commit(supersketches [][]byte) ([]byte, error) {
	conf, err := shared.settings()
	if err != nil {
		return nil, err
	}

	poly, err := foldToPoly(supersketches)
	if err != nil {
		return nil, err
	}
	point := conf.Commit(poly)
	bytes := crypto.ElementsToBytesUncompressed([]*crypto.Point{&point})
	return bytes[0][:], nil
}

// foldToPoly compresses each supersketch to a 32-byte digest (via
// KT128, already in use for node hashing) and reduces it into a scalar
// field element, since a supersketch's natural length (HASH_SIZE·S) is
// usually wider than the field's 32-byte representation.
func foldToPoly(supersketches [][]byte) ([]crypto.Fr, error) {
	poly := make([]crypto.Fr, NodeWidth)
	for i := 0; i < NodeWidth && i < len(supersketches); i++ {
		digest := digest32(supersketches[i])
		if err := crypto.FromLEBytes(&poly[i], digest[:]); err != nil {
			return nil, err
		}
	}
	return poly, nil
}

func digest32(b []byte) [32]byte {
	h := kt128.New()
	_, _ = h.Write(b)
	var out [32]byte
	_, _ = io.ReadFull(h, out[:])
	return out
}
