package types

import "keytree/internal/util/memzero"

// ExtendedKey is a private node of the derivation tree.
type ExtendedKey struct {
	PrivateKey        [32]byte
	ChainCode         [32]byte
	Depth             uint8
	ParentFingerprint [4]byte
	ChildNumber       uint32
}

// Wipe zeroes the secret parts of the node.
func (k *ExtendedKey) Wipe() {
	memzero.Zero(k.PrivateKey[:], k.ChainCode[:])
}
