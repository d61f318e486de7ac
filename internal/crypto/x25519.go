package crypto

import (
	"fmt"

	"golang.org/x/crypto/curve25519"

	"keytree/internal/domain"
)

// X25519PublicFromPrivate multiplies the base point by priv. X25519 clamps
// priv internally, so raw (unclamped) bytes are accepted.
func X25519PublicFromPrivate(priv domain.X25519Private) (pub domain.X25519Public, err error) {
	pb, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return pub, err
	}
	copy(pub[:], pb)
	return pub, nil
}

// DH computes X25519 Diffie–Hellman. Peer points of low order, whose output
// is all zeros, are rejected with domain.ErrInvalidPeerKey.
func DH(priv domain.X25519Private, pub domain.X25519Public) (out domain.SharedSecret, err error) {
	secret, err := curve25519.X25519(priv.Slice(), pub.Slice())
	if err != nil {
		return out, fmt.Errorf("%w: %v", domain.ErrInvalidPeerKey, err)
	}
	copy(out[:], secret)
	return out, nil
}

// FingerprintX25519 returns a short fingerprint of the public key.
func FingerprintX25519(pub domain.X25519Public) domain.Fingerprint {
	return Fingerprint(pub[:])
}
