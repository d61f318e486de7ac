// Package identity manages the stored mnemonic phrase that every account is
// opened from.
//
// It loads the phrase from a domain.PhraseStore, creates and saves a fresh one
// through the domain.SeedSource when none exists, and opens account services
// from it. It also enforces the strength policy for secrets that seal the
// phrase on disk.
package identity
