// Package signing is the SigningIdentity: the secp256k1 ECDSA view of a
// derived node.
//
// Signatures are 64 bytes (r||s) over SHA-256 of the message, with RFC 6979
// nonces, so signing is deterministic. Verify separates "does not match"
// (false, nil) from "cannot be a signature" (domain.ErrMalformedSignature).
package signing
