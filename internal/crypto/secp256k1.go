package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"keytree/internal/domain"
)

// ErrInvalidScalar is returned for private key bytes that are zero or not
// below the curve order.
var ErrInvalidScalar = errors.New("secp256k1 scalar out of range")

// ParseSecp256k1Private interprets b as a private scalar in [1, n-1].
// Unlike secp256k1.PrivKeyFromBytes it never reduces modulo n.
func ParseSecp256k1Private(b [32]byte) (*secp256k1.PrivateKey, error) {
	var k secp256k1.ModNScalar
	if overflow := k.SetBytes(&b); overflow != 0 || k.IsZero() {
		return nil, ErrInvalidScalar
	}
	return secp256k1.NewPrivateKey(&k), nil
}

// Secp256k1PublicFromPrivate returns the compressed public key k·G.
func Secp256k1PublicFromPrivate(priv domain.Secp256k1Private) (pub domain.Secp256k1Public, err error) {
	key, err := ParseSecp256k1Private(priv)
	if err != nil {
		return pub, err
	}
	defer key.Zero()
	copy(pub[:], key.PubKey().SerializeCompressed())
	return pub, nil
}

// SignSecp256k1 signs SHA-256(msg) with an RFC 6979 nonce. The result is
// canonical (low-S).
func SignSecp256k1(priv domain.Secp256k1Private, msg []byte) (out domain.Signature, err error) {
	key, err := ParseSecp256k1Private(priv)
	if err != nil {
		return out, err
	}
	defer key.Zero()

	digest := sha256.Sum256(msg)
	sig := ecdsa.Sign(key, digest[:])
	r, s := sig.R(), sig.S()
	r.PutBytesUnchecked(out[:32])
	s.PutBytesUnchecked(out[32:])
	return out, nil
}

// VerifySecp256k1 checks a 64-byte r||s signature over SHA-256(msg).
//
// Input that cannot be a signature at all (wrong length) is
// domain.ErrMalformedSignature, and an unparseable key is
// domain.ErrMalformedPublicKey. Any 64-byte value that does not verify,
// including r or s out of range and non-canonical high-S values, is false
// with a nil error, so a tampered signature always reads as a mismatch.
func VerifySecp256k1(pub domain.Secp256k1Public, msg, sig []byte) (bool, error) {
	if len(sig) != len(domain.Signature{}) {
		return false, fmt.Errorf("%w: want %d bytes, got %d",
			domain.ErrMalformedSignature, len(domain.Signature{}), len(sig))
	}
	key, err := secp256k1.ParsePubKey(pub[:])
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrMalformedPublicKey, err)
	}
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig[:32]); overflow || r.IsZero() {
		return false, nil
	}
	if overflow := s.SetByteSlice(sig[32:]); overflow || s.IsZero() || s.IsOverHalfOrder() {
		return false, nil
	}
	digest := sha256.Sum256(msg)
	return ecdsa.NewSignature(&r, &s).Verify(digest[:], key), nil
}
