// Package crypto exposes the primitives keytree composes.
//
// Contents
//
//   - secp256k1 scalar parsing, public keys, ECDSA signing and verification
//     over SHA-256 (ParseSecp256k1Private, Secp256k1PublicFromPrivate,
//     SignSecp256k1, VerifySecp256k1)
//   - X25519 public keys from derived node bytes and Diffie–Hellman
//     (X25519PublicFromPrivate, DH)
//   - Hashes used by BIP32 identifiers and checksums (Hash160, DoubleSHA256)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//   - Hex helpers for the CLI (Hex, DecodeHex)
//
// # Notes
//
// Both key algebras accept the same 32 bytes of a derived node. secp256k1
// treats them as a scalar modulo n; X25519 clamps them and multiplies the
// Curve25519 base point. That the two views leak nothing about each other is
// an assumption on the underlying primitives and is not re-derived here.
//
// All functions return fixed-size array types defined in internal/domain to
// avoid accidental reallocations.
package crypto
