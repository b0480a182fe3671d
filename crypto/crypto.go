package crypto

import (
	"errors"

	"github.com/crate-crypto/go-ipa/bandersnatch/fr"
	"github.com/crate-crypto/go-ipa/banderwagon"
	"github.com/crate-crypto/go-ipa/ipa"
)

type (
	Fr    = fr.Element
	Point = banderwagon.Element
)

const (
	SerializedPointUncompressedSize = 64
)

func FromLEBytes(fr *Fr, data []byte) error {
	if len(data) > 32 {
		return errors.New("data is too long")
	}
	var aligned [32]byte
	copy(aligned[:], data)
	fr.SetBytesLE(aligned[:])
	return nil
}

func NewIPASettings() (*ipa.IPAConfig, error) {
	return ipa.NewIPASettings()
}

func ElementsToBytesUncompressed(elements []*Point) [][SerializedPointUncompressedSize]byte {
	return banderwagon.ElementsToBytesUncompressed(elements)
}
