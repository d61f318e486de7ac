package domain

import "errors"

// Error kinds surfaced by the key core. Callers match them with errors.Is;
// the wrapped message carries the detail.
var (
	ErrInvalidMnemonic    = errors.New("invalid mnemonic")
	ErrInvalidPath        = errors.New("invalid derivation path")
	ErrDerivationFailed   = errors.New("key derivation failed")
	ErrMalformedSignature = errors.New("malformed signature")
	ErrMalformedPublicKey = errors.New("malformed public key")
	ErrInvalidPeerKey     = errors.New("invalid peer public key")
	ErrAccountClosed      = errors.New("account is closed")
)
