package types

import (
	"errors"
	"fmt"

	"keytree/internal/util/memzero"
)

const (
	// MinSeedBytes and MaxSeedBytes bound a BIP32 master seed.
	MinSeedBytes = 16
	MaxSeedBytes = 64
)

// ErrSeedLength is returned when raw seed material is outside BIP32 bounds.
var ErrSeedLength = errors.New("seed length out of range")

// Seed is the root secret of one derivation tree. It is immutable after
// construction; only Wipe writes to it.
type Seed struct {
	b []byte
}

// NewSeed copies raw into a new Seed.
func NewSeed(raw []byte) (*Seed, error) {
	if len(raw) < MinSeedBytes || len(raw) > MaxSeedBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrSeedLength, len(raw))
	}
	return &Seed{b: append([]byte(nil), raw...)}, nil
}

// Bytes returns the seed material. Callers must not modify it.
func (s *Seed) Bytes() []byte { return s.b }

// Len returns the seed length in bytes.
func (s *Seed) Len() int { return len(s.b) }

// Wipe zeroes the seed. It must only run once no derivation is reading it.
func (s *Seed) Wipe() {
	memzero.Zero(s.b)
}
