// Package exchange is the ExchangeIdentity: the X25519 view of a derived node.
//
// The node's 32 private bytes become the X25519 secret unchanged; clamping is
// applied by the scalar multiplication itself. Agreement rejects low-order
// peer points, whose output would be all zeros, with
// domain.ErrInvalidPeerKey.
//
// The raw agreement output is not a uniformly random key. SessionKey expands
// it with HKDF-SHA256 and a caller-chosen context label.
package exchange
