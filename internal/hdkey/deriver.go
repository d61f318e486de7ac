package hdkey

import "keytree/internal/domain"

// Deriver is the stateless domain.PathDeriver over BIP32 secp256k1 trees.
type Deriver struct{}

// NewDeriver returns a Deriver.
func NewDeriver() *Deriver { return &Deriver{} }

// ParsePath parses a textual derivation path.
func (*Deriver) ParsePath(text string) (domain.DerivationPath, error) {
	return ParsePath(text)
}

// Derive returns the node at path below seed's master node.
func (*Deriver) Derive(seed *domain.Seed, path domain.DerivationPath) (domain.ExtendedKey, error) {
	return Derive(seed, path)
}

// Compile-time assertion that Deriver implements domain.PathDeriver.
var _ domain.PathDeriver = (*Deriver)(nil)
