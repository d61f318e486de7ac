package exchange_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"keytree/internal/domain"
	domaintypes "keytree/internal/domain/types"
	"keytree/internal/hdkey"
	"keytree/internal/services/exchange"
)

func node(t *testing.T, fill byte, path string) domain.ExtendedKey {
	t.Helper()
	s, err := domaintypes.NewSeed(bytes.Repeat([]byte{fill}, 32))
	require.NoError(t, err)
	p, err := hdkey.ParsePath(path)
	require.NoError(t, err)
	n, err := hdkey.Derive(s, p)
	require.NoError(t, err)
	return n
}

func TestAgreeSymmetric(t *testing.T) {
	svc := exchange.New()
	a, err := svc.KeyPair(node(t, 1, "m/44'/0'/0'/0/0'"))
	require.NoError(t, err)
	b, err := svc.KeyPair(node(t, 2, "m/11'/0'/0'/0/0'"))
	require.NoError(t, err)

	ab, err := svc.Agree(a.Private, b.Public)
	require.NoError(t, err)
	ba, err := svc.Agree(b.Private, a.Public)
	require.NoError(t, err)

	require.Equal(t, ab, ba)
	require.NotEqual(t, a.Private[:], ab[:])
	require.NotEqual(t, b.Private[:], ab[:])
}

func TestAgreeRejectsLowOrderPeer(t *testing.T) {
	svc := exchange.New()
	a, err := svc.KeyPair(node(t, 1, "m/1'"))
	require.NoError(t, err)
	_, err = svc.Agree(a.Private, domain.X25519Public{})
	require.ErrorIs(t, err, domain.ErrInvalidPeerKey)
}

func TestSessionKey(t *testing.T) {
	var shared domain.SharedSecret
	shared[0] = 9

	k1, err := exchange.SessionKey(shared, []byte("a"), 32)
	require.NoError(t, err)
	require.Len(t, k1, 32)
	k2, err := exchange.SessionKey(shared, []byte("a"), 32)
	require.NoError(t, err)
	require.Equal(t, k1, k2)
	k3, err := exchange.SessionKey(shared, []byte("b"), 32)
	require.NoError(t, err)
	require.NotEqual(t, k1, k3)

	for _, n := range []int{0, -1, exchange.MaxSessionKeyLen + 1} {
		_, err := exchange.SessionKey(shared, nil, n)
		require.Error(t, err)
	}
}

func TestAgreeDistinctPeers(t *testing.T) {
	svc := exchange.New()
	a, err := svc.KeyPair(node(t, 1, "m/44'/0'/0'/0/0'"))
	require.NoError(t, err)
	b, err := svc.KeyPair(node(t, 2, "m/11'/0'/0'/0/0'"))
	require.NoError(t, err)
	c, err := svc.KeyPair(node(t, 2, "m/12'/0'"))
	require.NoError(t, err)
	require.NotEqual(t, b.Public, c.Public)

	ab, err := svc.Agree(a.Private, b.Public)
	require.NoError(t, err)
	ac, err := svc.Agree(a.Private, c.Public)
	require.NoError(t, err)
	require.NotEqual(t, ab, ac)
}
