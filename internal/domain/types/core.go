package types

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Network selects the BIP32 serialization version bytes.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// String returns the string form of the network.
func (n Network) String() string { return string(n) }
