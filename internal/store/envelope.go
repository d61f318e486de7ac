package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"keytree/internal/util/memzero"
)

// envelopeVersion is the sealed-file format written by this package.
const envelopeVersion = 2

// ErrWrongPassphrase is returned when the store secret is incorrect or the
// sealed file has been modified.
var ErrWrongPassphrase = errors.New("wrong store secret or corrupted phrase file")

// kdfParams are the scrypt cost parameters recorded next to the ciphertext.
type kdfParams struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

// defaultKDF costs roughly 100ms on a laptop.
var defaultKDF = kdfParams{N: 1 << 15, R: 8, P: 1}

// minKDFCost rejects files rewritten with a weakened work factor.
const minKDFCost = 1 << 14

// envelope is the on-disk JSON form. Everything except Sealed is bound to the
// ciphertext as associated data.
type envelope struct {
	Version int       `json:"v"`
	KDF     kdfParams `json:"scrypt"`
	Salt    []byte    `json:"salt"`
	Nonce   []byte    `json:"nonce"`
	Sealed  []byte    `json:"sealed"`
}

func (e *envelope) header() []byte {
	h, _ := json.Marshal(struct {
		Version int       `json:"v"`
		KDF     kdfParams `json:"scrypt"`
		Salt    []byte    `json:"salt"`
		Nonce   []byte    `json:"nonce"`
	}{e.Version, e.KDF, e.Salt, e.Nonce})
	return h
}

func (p kdfParams) key(secret string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(secret), salt, p.N, p.R, p.P, chacha20poly1305.KeySize)
}

// seal encrypts plaintext with XChaCha20-Poly1305 under a key stretched from
// secret.
func seal(secret string, plaintext []byte, params kdfParams) ([]byte, error) {
	env := envelope{
		Version: envelopeVersion,
		KDF:     params,
		Salt:    make([]byte, 16),
		Nonce:   make([]byte, chacha20poly1305.NonceSizeX),
	}
	if _, err := rand.Read(env.Salt); err != nil {
		return nil, err
	}
	if _, err := rand.Read(env.Nonce); err != nil {
		return nil, err
	}

	key, err := params.key(secret, env.Salt)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	env.Sealed = aead.Seal(nil, env.Nonce, plaintext, env.header())
	return json.Marshal(env)
}

// open reverses seal. Any authentication failure is ErrWrongPassphrase.
func open(secret string, b []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrongPassphrase, err)
	}
	if env.Version != envelopeVersion {
		return nil, fmt.Errorf("unsupported sealed file version %d", env.Version)
	}
	if env.KDF.N < minKDFCost {
		return nil, fmt.Errorf("scrypt N %d below minimum %d", env.KDF.N, minKDFCost)
	}
	if len(env.Nonce) != chacha20poly1305.NonceSizeX {
		return nil, ErrWrongPassphrase
	}

	key, err := env.KDF.key(secret, env.Salt)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, env.Nonce, env.Sealed, env.header())
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
