package exchange

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"keytree/internal/crypto"
	"keytree/internal/domain"
)

// MaxSessionKeyLen is the HKDF-SHA256 output limit.
const MaxSessionKeyLen = 255 * sha256.Size

var errSessionKeyLen = errors.New("session key length out of range")

// Service turns nodes into X25519 key pairs and agrees on shared secrets.
// It holds no state.
type Service struct{}

// New returns an exchange Service.
func New() *Service { return &Service{} }

// KeyPair runs the node's private key bytes through X25519 key generation.
func (*Service) KeyPair(node domain.ExtendedKey) (domain.ExchangeKeyPair, error) {
	priv := domain.X25519Private(node.PrivateKey)
	pub, err := crypto.X25519PublicFromPrivate(priv)
	if err != nil {
		return domain.ExchangeKeyPair{}, fmt.Errorf("%w: exchange key: %v", domain.ErrDerivationFailed, err)
	}
	return domain.ExchangeKeyPair{Private: priv, Public: pub}, nil
}

// Agree computes the shared secret between priv and peer.
func (*Service) Agree(priv domain.X25519Private, peer domain.X25519Public) (domain.SharedSecret, error) {
	return crypto.DH(priv, peer)
}

// SessionKey expands shared into n bytes of key material bound to info.
func SessionKey(shared domain.SharedSecret, info []byte, n int) ([]byte, error) {
	if n <= 0 || n > MaxSessionKeyLen {
		return nil, fmt.Errorf("%w: %d", errSessionKeyLen, n)
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(hkdf.New(sha256.New, shared[:], nil, info), out); err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time assertion that Service implements domain.ExchangeIdentity.
var _ domain.ExchangeIdentity = (*Service)(nil)
