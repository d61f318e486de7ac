package domain

import (
	interfaces "keytree/internal/domain/interfaces"
	types "keytree/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint      = types.Fingerprint
	Network          = types.Network
	Seed             = types.Seed
	PathSegment      = types.PathSegment
	DerivationPath   = types.DerivationPath
	ExtendedKey      = types.ExtendedKey
	SigningKeyPair   = types.SigningKeyPair
	ExchangeKeyPair  = types.ExchangeKeyPair
	Signature        = types.Signature
	SharedSecret     = types.SharedSecret
	X25519Public     = types.X25519Public
	X25519Private    = types.X25519Private
	Secp256k1Public  = types.Secp256k1Public
	Secp256k1Private = types.Secp256k1Private
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SeedSource       = interfaces.SeedSource
	PathDeriver      = interfaces.PathDeriver
	SigningIdentity  = interfaces.SigningIdentity
	ExchangeIdentity = interfaces.ExchangeIdentity
	AccountService   = interfaces.AccountService
	PhraseStore      = interfaces.PhraseStore
)

const (
	Mainnet = types.Mainnet
	Testnet = types.Testnet

	HardenedOffset = types.HardenedOffset
)
