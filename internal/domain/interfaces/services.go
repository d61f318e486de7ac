package interfaces

import domaintypes "keytree/internal/domain/types"

// SeedSource produces mnemonic phrases and turns them into seeds.
type SeedSource interface {
	NewMnemonic() (string, error)
	SeedFromMnemonic(phrase, passphrase string) (*domaintypes.Seed, error)
	ValidateMnemonic(phrase string) bool
}

// PathDeriver parses textual paths and walks a seed's key tree.
type PathDeriver interface {
	ParsePath(text string) (domaintypes.DerivationPath, error)
	Derive(
		seed *domaintypes.Seed,
		path domaintypes.DerivationPath,
	) (domaintypes.ExtendedKey, error)
}

// SigningIdentity materializes ECDSA key pairs from nodes and signs with them.
type SigningIdentity interface {
	KeyPair(node domaintypes.ExtendedKey) (domaintypes.SigningKeyPair, error)
	Sign(priv domaintypes.Secp256k1Private, msg []byte) (domaintypes.Signature, error)
	Verify(pub domaintypes.Secp256k1Public, msg, sig []byte) (bool, error)
}

// ExchangeIdentity materializes X25519 key pairs from nodes and agrees on
// shared secrets.
type ExchangeIdentity interface {
	KeyPair(node domaintypes.ExtendedKey) (domaintypes.ExchangeKeyPair, error)
	Agree(
		priv domaintypes.X25519Private,
		peer domaintypes.X25519Public,
	) (domaintypes.SharedSecret, error)
}

// AccountService is the path-addressed facade over one seed.
type AccountService interface {
	Sign(path string, msg []byte) (domaintypes.Signature, error)
	Verify(path string, msg, sig []byte) (bool, error)
	ExchangeKey(path string) (domaintypes.ExchangeKeyPair, error)
	SigningKey(path string) (domaintypes.Secp256k1Public, error)
	Agree(path string, peer domaintypes.X25519Public) (domaintypes.SharedSecret, error)
	ExtendedPublicKey(path string) (string, error)
	Close() error
}
