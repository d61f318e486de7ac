// Package seed is the SeedSource: it generates BIP39 mnemonic phrases from an
// injected entropy source and stretches phrases into 64-byte seeds.
//
// Phrases use the English wordlist. The phrase and the optional passphrase
// are NFKD-normalized before seeding, as BIP39 requires; whitespace between
// words is collapsed to single spaces. Nothing else is normalized, so a
// misspelled or mis-cased word fails with domain.ErrInvalidMnemonic.
package seed
