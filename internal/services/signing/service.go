package signing

import (
	"fmt"

	"keytree/internal/crypto"
	"keytree/internal/domain"
)

// Service turns nodes into ECDSA key pairs and signs or verifies with them.
// It holds no state.
type Service struct{}

// New returns a signing Service.
func New() *Service { return &Service{} }

// KeyPair uses the node's private key bytes directly as the signing scalar.
func (*Service) KeyPair(node domain.ExtendedKey) (domain.SigningKeyPair, error) {
	pub, err := crypto.Secp256k1PublicFromPrivate(node.PrivateKey)
	if err != nil {
		return domain.SigningKeyPair{}, fmt.Errorf("%w: signing key: %v", domain.ErrDerivationFailed, err)
	}
	return domain.SigningKeyPair{Private: node.PrivateKey, Public: pub}, nil
}

// Sign signs msg with priv.
func (*Service) Sign(priv domain.Secp256k1Private, msg []byte) (domain.Signature, error) {
	sig, err := crypto.SignSecp256k1(priv, msg)
	if err != nil {
		return domain.Signature{}, fmt.Errorf("sign: %w", err)
	}
	return sig, nil
}

// Verify checks sig over msg against pub.
func (*Service) Verify(pub domain.Secp256k1Public, msg, sig []byte) (bool, error) {
	return crypto.VerifySecp256k1(pub, msg, sig)
}

// Compile-time assertion that Service implements domain.SigningIdentity.
var _ domain.SigningIdentity = (*Service)(nil)
