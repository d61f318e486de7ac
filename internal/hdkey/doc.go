// Package hdkey implements BIP32 hierarchical deterministic derivation over
// secp256k1.
//
// # Paths
//
// Paths use the wallet-interoperable syntax "m/44'/0'/0'/0/0'": an "m"
// followed by "/"-separated decimal indices below 2^31, each optionally
// suffixed by an apostrophe to mark hardened derivation. ParsePath rejects
// anything else instead of normalizing it.
//
// # Derivation
//
// The master node is HMAC-SHA512("Bitcoin seed", seed). Each child step is
// HMAC-SHA512 keyed by the parent chain code over either the parent private
// key (hardened) or the parent compressed public key (normal), followed by
// the big-endian child number. The left half is added to the parent key
// modulo the curve order; the right half is the child chain code.
//
// Derivation is a pure function of (seed, path). Nothing is cached, so the
// same node may be derived concurrently from many goroutines.
//
// # Serialization
//
// SerializePrivate and SerializePublic produce the standard 78-byte
// Base58Check encodings (xprv/xpub on mainnet, tprv/tpub on testnet).
package hdkey
