package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"keytree/internal/domain"
)

const abandonAbout = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--home", home}, args...))
	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestInitSignVerify(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "init", "--import", abandonAbout)
	require.NoError(t, err)
	require.Equal(t, "Mnemonic imported.", out)

	out, err = run(t, home, "init")
	require.NoError(t, err)
	require.Equal(t, "Mnemonic already stored.", out)

	sig, err := run(t, home, "sign", "Hello, world!")
	require.NoError(t, err)
	require.Len(t, sig, 128)

	out, err = run(t, home, "verify", "Hello, world!", sig)
	require.NoError(t, err)
	require.Equal(t, "Signature valid.", out)

	_, err = run(t, home, "verify", "Hello, world?", sig)
	require.ErrorIs(t, err, errSignatureMismatch)

	_, err = run(t, home, "--path", "m/11'/0'/0'/0/0'", "verify", "Hello, world!", sig)
	require.ErrorIs(t, err, errSignatureMismatch)
}

func TestPubkeyAndAgree(t *testing.T) {
	alice, bob := t.TempDir(), t.TempDir()
	_, err := run(t, alice, "init", "--import", abandonAbout)
	require.NoError(t, err)
	_, err = run(t, bob, "init")
	require.NoError(t, err)

	out, err := run(t, alice, "--network", "testnet", "pubkey")
	require.NoError(t, err)
	require.Contains(t, out, "Extended key: tpub")

	aPub, err := run(t, alice, "exchange-key")
	require.NoError(t, err)
	bPub, err := run(t, bob, "--path", "m/11'/0'/0'/0/0'", "exchange-key")
	require.NoError(t, err)

	ab, err := run(t, alice, "agree", bPub)
	require.NoError(t, err)
	ba, err := run(t, bob, "--path", "m/11'/0'/0'/0/0'", "agree", aPub)
	require.NoError(t, err)
	require.Equal(t, ab, ba)

	k1, err := run(t, alice, "agree", "--info", "chat", "--length", "16", bPub)
	require.NoError(t, err)
	require.Len(t, k1, 32)
	require.NotEqual(t, ab[:32], k1)

	_, err = run(t, alice, "agree", strings.Repeat("00", 32))
	require.Error(t, err)
}

func TestCommandsWithoutPhraseFail(t *testing.T) {
	_, err := run(t, t.TempDir(), "sign", "x")
	require.Error(t, err)
}

func TestBadPathFlag(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, "init", "--import", abandonAbout)
	require.NoError(t, err)
	_, err = run(t, home, "--path", "m/0x", "sign", "x")
	require.Error(t, err)
}

func TestMnemonicAndDemo(t *testing.T) {
	home := t.TempDir()
	out, err := run(t, home, "mnemonic")
	require.NoError(t, err)
	require.Len(t, strings.Fields(out), 24)

	out, err = run(t, home, "demo")
	require.NoError(t, err)
	require.Contains(t, out, `Signed "Hello, world!"`)
	require.Contains(t, out, "Shared secret fingerprint:")
}

func TestExplicitConfigMustExist(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, "--config", filepath.Join(home, "missing.yaml"), "mnemonic")
	require.ErrorIs(t, err, os.ErrNotExist)

	cfg := filepath.Join(home, "custom.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("mnemonic_bits: 128\n"), 0o600))
	out, err := run(t, home, "--config", cfg, "mnemonic")
	require.NoError(t, err)
	require.Len(t, strings.Fields(out), 12)
}

func TestPublicOnlyWipesPrivateHalf(t *testing.T) {
	pair := domain.ExchangeKeyPair{Private: domain.X25519Private{1, 2, 3}, Public: domain.X25519Public{9}}
	pub := publicOnly(&pair)
	require.Equal(t, domain.X25519Public{9}, pub)
	require.Equal(t, domain.X25519Private{}, pair.Private)
}
