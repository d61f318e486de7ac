package hdkey

import (
	"encoding/binary"
	"fmt"

	"github.com/mr-tron/base58"

	"keytree/internal/crypto"
	"keytree/internal/domain"
	"keytree/internal/util/memzero"
)

type versionPair struct {
	private, public uint32
}

var versions = map[domain.Network]versionPair{
	domain.Mainnet: {private: 0x0488ade4, public: 0x0488b21e}, // xprv / xpub
	domain.Testnet: {private: 0x04358394, public: 0x043587cf}, // tprv / tpub
}

// serializedLen is version(4) depth(1) parent(4) child(4) chain(32) key(33).
const serializedLen = 78

// SerializePrivate returns the Base58Check xprv/tprv form of node.
func SerializePrivate(node domain.ExtendedKey, net domain.Network) (string, error) {
	v, ok := versions[net]
	if !ok {
		return "", fmt.Errorf("unknown network %q", net)
	}
	keyData := make([]byte, 33)
	defer memzero.Zero(keyData)
	copy(keyData[1:], node.PrivateKey[:])
	return encode(v.private, node, keyData), nil
}

// SerializePublic returns the Base58Check xpub/tpub form of node.
func SerializePublic(node domain.ExtendedKey, net domain.Network) (string, error) {
	v, ok := versions[net]
	if !ok {
		return "", fmt.Errorf("unknown network %q", net)
	}
	pub, err := crypto.Secp256k1PublicFromPrivate(node.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDerivationFailed, err)
	}
	return encode(v.public, node, pub[:]), nil
}

func encode(version uint32, node domain.ExtendedKey, keyData []byte) string {
	buf := make([]byte, 0, serializedLen+4)
	buf = binary.BigEndian.AppendUint32(buf, version)
	buf = append(buf, node.Depth)
	buf = append(buf, node.ParentFingerprint[:]...)
	buf = binary.BigEndian.AppendUint32(buf, node.ChildNumber)
	buf = append(buf, node.ChainCode[:]...)
	buf = append(buf, keyData...)
	sum := crypto.DoubleSHA256(buf)
	buf = append(buf, sum[:4]...)
	out := base58.Encode(buf)
	memzero.Zero(buf)
	return out
}
