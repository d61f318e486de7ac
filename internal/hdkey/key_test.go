package hdkey_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"

	"keytree/internal/domain"
	domaintypes "keytree/internal/domain/types"
	"keytree/internal/hdkey"
)

func mustSeed(t *testing.T, raw []byte) *domain.Seed {
	t.Helper()
	s, err := domaintypes.NewSeed(raw)
	require.NoError(t, err)
	return s
}

func mustPath(t *testing.T, text string) domain.DerivationPath {
	t.Helper()
	p, err := hdkey.ParsePath(text)
	require.NoError(t, err)
	return p
}

// BIP32 test vector 1.
func TestDeriveVector1(t *testing.T) {
	raw, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	seed := mustSeed(t, raw)

	tests := []struct {
		path, xprv, xpub string
	}{
		{
			"m",
			"xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi",
			"xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8",
		},
		{
			"m/0'",
			"xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7",
			"xpub68Gmy5EdvgibQVfPdqkBBCHxA5htiqg55crXYuXoQRKfDBFA1WEjWgP6LHhwBZeNK1VTsfTFUHCdrfp1bgwQ9xv5ski8PX9rL2dZXvgGDnw",
		},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			node, err := hdkey.Derive(seed, mustPath(t, tt.path))
			require.NoError(t, err)

			xprv, err := hdkey.SerializePrivate(node, domain.Mainnet)
			require.NoError(t, err)
			require.Equal(t, tt.xprv, xprv)

			xpub, err := hdkey.SerializePublic(node, domain.Mainnet)
			require.NoError(t, err)
			require.Equal(t, tt.xpub, xpub)
		})
	}
}

// Cross-check against an independent BIP32 implementation.
func TestDeriveMatchesHDKeychain(t *testing.T) {
	raw := bytes.Repeat([]byte{0x5a}, 64)
	seed := mustSeed(t, raw)

	for _, text := range []string{"m", "m/0", "m/44'/0'/0'/0/0'", "m/11'/0'/0'/0/0'", "m/1/2/3'/4/5"} {
		t.Run(text, func(t *testing.T) {
			path := mustPath(t, text)

			want, err := hdkeychain.NewMaster(raw, &chaincfg.MainNetParams)
			require.NoError(t, err)
			for _, seg := range path {
				want, err = want.Derive(seg.ChildNumber())
				require.NoError(t, err)
			}
			wantPriv, err := want.ECPrivKey()
			require.NoError(t, err)

			got, err := hdkey.Derive(seed, path)
			require.NoError(t, err)
			require.Equal(t, wantPriv.Serialize(), got.PrivateKey[:])
			require.Equal(t, want.ChainCode(), got.ChainCode[:])

			xprv, err := hdkey.SerializePrivate(got, domain.Mainnet)
			require.NoError(t, err)
			require.Equal(t, want.String(), xprv)

			neutered, err := want.Neuter()
			require.NoError(t, err)
			xpub, err := hdkey.SerializePublic(got, domain.Mainnet)
			require.NoError(t, err)
			require.Equal(t, neutered.String(), xpub)
		})
	}
}

func TestDeriveIsDeterministicAndIsolated(t *testing.T) {
	seedA := mustSeed(t, bytes.Repeat([]byte{1}, 32))
	seedB := mustSeed(t, bytes.Repeat([]byte{2}, 32))
	path := mustPath(t, "m/44'/0'/0'/0/0'")

	a1, err := hdkey.Derive(seedA, path)
	require.NoError(t, err)
	a2, err := hdkey.Derive(seedA, path)
	require.NoError(t, err)
	require.Equal(t, a1, a2)

	b, err := hdkey.Derive(seedB, path)
	require.NoError(t, err)
	require.NotEqual(t, a1.PrivateKey, b.PrivateKey)

	other, err := hdkey.Derive(seedA, mustPath(t, "m/44'/0'/0'/0/1'"))
	require.NoError(t, err)
	require.NotEqual(t, a1.PrivateKey, other.PrivateKey)

	// The hardened and non-hardened siblings are different nodes.
	normal, err := hdkey.Derive(seedA, mustPath(t, "m/44'/0'/0'/0/0"))
	require.NoError(t, err)
	require.NotEqual(t, a1.PrivateKey, normal.PrivateKey)
}

func TestDeriveMetadata(t *testing.T) {
	seed := mustSeed(t, bytes.Repeat([]byte{3}, 16))
	node, err := hdkey.Derive(seed, mustPath(t, "m/7/8'"))
	require.NoError(t, err)
	require.Equal(t, uint8(2), node.Depth)
	require.Equal(t, uint32(8)+domain.HardenedOffset, node.ChildNumber)
	require.NotEqual(t, [4]byte{}, node.ParentFingerprint)

	master, err := hdkey.Derive(seed, domain.DerivationPath{})
	require.NoError(t, err)
	require.Zero(t, master.Depth)
	require.Equal(t, [4]byte{}, master.ParentFingerprint)
}

func TestDeriveNilSeed(t *testing.T) {
	_, err := hdkey.Derive(nil, domain.DerivationPath{})
	require.ErrorIs(t, err, domain.ErrDerivationFailed)
}

func TestDeriveRejectsUnnormalizedIndex(t *testing.T) {
	seed := mustSeed(t, bytes.Repeat([]byte{4}, 16))
	_, err := hdkey.Derive(seed, domain.DerivationPath{{Index: domain.HardenedOffset}})
	require.ErrorIs(t, err, domain.ErrInvalidPath)
}

func TestChildRejectsZeroParent(t *testing.T) {
	_, err := hdkey.Child(domain.ExtendedKey{}, 0)
	require.ErrorIs(t, err, domain.ErrDerivationFailed)
}

func TestChildDepthLimit(t *testing.T) {
	seed := mustSeed(t, bytes.Repeat([]byte{5}, 16))
	node, err := hdkey.Derive(seed, domain.DerivationPath{})
	require.NoError(t, err)
	node.Depth = hdkey.MaxDepth
	_, err = hdkey.Child(node, 0)
	require.ErrorIs(t, err, domain.ErrDerivationFailed)
}

func TestSerializeTestnetAndUnknownNetwork(t *testing.T) {
	seed := mustSeed(t, bytes.Repeat([]byte{6}, 16))
	node, err := hdkey.Derive(seed, domain.DerivationPath{})
	require.NoError(t, err)

	tprv, err := hdkey.SerializePrivate(node, domain.Testnet)
	require.NoError(t, err)
	require.Equal(t, "tprv", tprv[:4])
	tpub, err := hdkey.SerializePublic(node, domain.Testnet)
	require.NoError(t, err)
	require.Equal(t, "tpub", tpub[:4])

	_, err = hdkey.SerializePublic(node, domain.Network("regtest"))
	require.Error(t, err)
}
