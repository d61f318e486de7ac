package hdkey

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"keytree/internal/crypto"
	"keytree/internal/domain"
	"keytree/internal/util/memzero"
)

// masterHMACKey is the BIP32 key for the master node HMAC.
var masterHMACKey = []byte("Bitcoin seed")

// NewMaster computes the master node for seed.
func NewMaster(seed []byte) (domain.ExtendedKey, error) {
	mac := hmac.New(sha512.New, masterHMACKey)
	mac.Write(seed)
	sum := mac.Sum(nil)
	defer memzero.Zero(sum)

	var k secp256k1.ModNScalar
	defer k.Zero()
	if overflow := k.SetByteSlice(sum[:32]); overflow || k.IsZero() {
		return domain.ExtendedKey{}, fmt.Errorf("%w: master key out of range", domain.ErrDerivationFailed)
	}

	var node domain.ExtendedKey
	k.PutBytes(&node.PrivateKey)
	copy(node.ChainCode[:], sum[32:])
	return node, nil
}

// Child derives the child of parent at the BIP32 child number n.
// Numbers at or above 2^31 are hardened and mix in the parent's private key;
// the others mix in the parent's compressed public key.
//
// An intermediate value outside the curve order or a zero child key fails
// with domain.ErrDerivationFailed. The caller must not retry at n+1: that
// would silently change which key a path names.
func Child(parent domain.ExtendedKey, n uint32) (domain.ExtendedKey, error) {
	if parent.Depth == MaxDepth {
		return domain.ExtendedKey{}, fmt.Errorf("%w: depth limit reached", domain.ErrDerivationFailed)
	}
	parentKey, err := crypto.ParseSecp256k1Private(parent.PrivateKey)
	if err != nil {
		return domain.ExtendedKey{}, fmt.Errorf("%w: parent: %v", domain.ErrDerivationFailed, err)
	}
	defer parentKey.Zero()
	parentPub := parentKey.PubKey().SerializeCompressed()

	data := make([]byte, 37)
	defer memzero.Zero(data)
	if n >= domain.HardenedOffset {
		copy(data[1:33], parent.PrivateKey[:])
	} else {
		copy(data[:33], parentPub)
	}
	binary.BigEndian.PutUint32(data[33:], n)

	mac := hmac.New(sha512.New, parent.ChainCode[:])
	mac.Write(data)
	sum := mac.Sum(nil)
	defer memzero.Zero(sum)

	var k secp256k1.ModNScalar
	defer k.Zero()
	if overflow := k.SetByteSlice(sum[:32]); overflow {
		return domain.ExtendedKey{}, fmt.Errorf("%w: child %d: tweak out of range", domain.ErrDerivationFailed, n)
	}
	k.Add(&parentKey.Key)
	if k.IsZero() {
		return domain.ExtendedKey{}, fmt.Errorf("%w: child %d: zero key", domain.ErrDerivationFailed, n)
	}

	child := domain.ExtendedKey{
		Depth:       parent.Depth + 1,
		ChildNumber: n,
	}
	k.PutBytes(&child.PrivateKey)
	copy(child.ChainCode[:], sum[32:])
	copy(child.ParentFingerprint[:], crypto.Hash160(parentPub)[:4])
	return child, nil
}

// Derive walks from the master node of seed along path.
// Intermediate nodes are wiped as soon as their child exists.
func Derive(seed *domain.Seed, path domain.DerivationPath) (domain.ExtendedKey, error) {
	if seed == nil || seed.Len() == 0 {
		return domain.ExtendedKey{}, fmt.Errorf("%w: no seed", domain.ErrDerivationFailed)
	}
	if len(path) > MaxDepth {
		return domain.ExtendedKey{}, fmt.Errorf("%w: path deeper than %d", domain.ErrInvalidPath, MaxDepth)
	}
	node, err := NewMaster(seed.Bytes())
	if err != nil {
		return domain.ExtendedKey{}, err
	}
	for i, seg := range path {
		if seg.Index >= domain.HardenedOffset {
			node.Wipe()
			return domain.ExtendedKey{}, fmt.Errorf("%w: segment %d index %d", domain.ErrInvalidPath, i+1, seg.Index)
		}
		next, err := Child(node, seg.ChildNumber())
		node.Wipe()
		if err != nil {
			return domain.ExtendedKey{}, fmt.Errorf("at %s: %w", path[:i+1], err)
		}
		node = next
	}
	return node, nil
}
