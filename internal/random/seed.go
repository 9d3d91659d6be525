// Package random builds the simulation's pseudo-random generators.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// New returns a PCG generator for seed. A zero seed is replaced with a
// fresh random one; the seed actually used is returned for replay.
func New(seed uint64) (*rand.Rand, uint64, error) {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, 0, err
		}
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed, nil
}
