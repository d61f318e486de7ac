package types

// SigningKeyPair is the ECDSA view of one derived node.
type SigningKeyPair struct {
	Private Secp256k1Private
	Public  Secp256k1Public
}

// ExchangeKeyPair is the Diffie-Hellman view of one derived node.
type ExchangeKeyPair struct {
	Private X25519Private
	Public  X25519Public
}
