package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"keytree/internal/crypto"
	"keytree/internal/domain"
)

func fixedX25519(t *testing.T, fill byte) (domain.X25519Private, domain.X25519Public) {
	t.Helper()
	var priv domain.X25519Private
	for i := range priv {
		priv[i] = fill + byte(i)
	}
	pub, err := crypto.X25519PublicFromPrivate(priv)
	require.NoError(t, err)
	return priv, pub
}

func TestDHSymmetry(t *testing.T) {
	aPriv, aPub := fixedX25519(t, 0x10)
	bPriv, bPub := fixedX25519(t, 0x80)
	require.NotEqual(t, aPub, bPub)

	ab, err := crypto.DH(aPriv, bPub)
	require.NoError(t, err)
	ba, err := crypto.DH(bPriv, aPub)
	require.NoError(t, err)
	require.Equal(t, ab, ba)
}

func TestDHDistinctPeers(t *testing.T) {
	aPriv, _ := fixedX25519(t, 0x10)
	_, bPub := fixedX25519(t, 0x80)
	_, cPub := fixedX25519(t, 0xc0)

	ab, err := crypto.DH(aPriv, bPub)
	require.NoError(t, err)
	ac, err := crypto.DH(aPriv, cPub)
	require.NoError(t, err)
	require.NotEqual(t, ab, ac)
}

func TestX25519PublicIgnoresClamping(t *testing.T) {
	raw, _ := fixedX25519(t, 1)
	clamped := raw
	clamped[0] &= 248
	clamped[31] &= 127
	clamped[31] |= 64

	a, err := crypto.X25519PublicFromPrivate(raw)
	require.NoError(t, err)
	b, err := crypto.X25519PublicFromPrivate(clamped)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestDHRejectsLowOrderPoints(t *testing.T) {
	priv, _ := fixedX25519(t, 0x33)

	var zero, one domain.X25519Public
	one[0] = 1
	for _, peer := range []domain.X25519Public{zero, one} {
		_, err := crypto.DH(priv, peer)
		require.ErrorIs(t, err, domain.ErrInvalidPeerKey)
	}
}
