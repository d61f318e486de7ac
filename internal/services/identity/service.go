package identity

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode"

	"keytree/internal/domain"
	"keytree/internal/services/account"
	"keytree/internal/services/seed"
)

const (
	// minSecretLength defines the minimum number of characters required for a store secret.
	minSecretLength = 12
)

var (
	// ErrWeakSecret is returned when a store secret fails the strength policy.
	ErrWeakSecret = fmt.Errorf(
		"store secret is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minSecretLength,
	)

	// ErrPhraseNotFound is returned when an account is opened before a phrase exists.
	ErrPhraseNotFound = errors.New("no mnemonic phrase stored")
)

// Service loads, creates and imports the stored phrase.
type Service struct {
	store  domain.PhraseStore
	seeds  domain.SeedSource
	logger *slog.Logger
}

// New returns an identity service backed by the given store and seed source.
func New(store domain.PhraseStore, seeds domain.SeedSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{store: store, seeds: seeds, logger: logger}
}

// LoadOrCreate returns the stored phrase, generating and saving a fresh one
// when the store is empty.
func (s *Service) LoadOrCreate() (phrase string, created bool, err error) {
	phrase, ok, err := s.store.LoadPhrase()
	if err != nil {
		return "", false, err
	}
	if ok {
		if !s.seeds.ValidateMnemonic(phrase) {
			return "", false, fmt.Errorf("%w: stored phrase", domain.ErrInvalidMnemonic)
		}
		return phrase, false, nil
	}

	phrase, err = s.seeds.NewMnemonic()
	if err != nil {
		return "", false, err
	}
	if err := s.store.SavePhrase(phrase); err != nil {
		return "", false, err
	}
	s.logger.Info("mnemonic created", "words", seed.WordCount(phrase))
	return phrase, true, nil
}

// Import validates phrase and stores it, replacing any stored phrase.
func (s *Service) Import(phrase string) (string, error) {
	phrase = seed.NormalizePhrase(phrase)
	if !s.seeds.ValidateMnemonic(phrase) {
		return "", domain.ErrInvalidMnemonic
	}
	if err := s.store.SavePhrase(phrase); err != nil {
		return "", err
	}
	s.logger.Info("mnemonic imported", "words", seed.WordCount(phrase))
	return phrase, nil
}

// OpenAccount opens an account over the stored phrase and BIP39 passphrase.
func (s *Service) OpenAccount(passphrase string, opts ...account.Option) (*account.Service, error) {
	phrase, ok, err := s.store.LoadPhrase()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPhraseNotFound
	}
	return account.FromMnemonic(s.seeds, phrase, passphrase, opts...)
}

// CheckStoreSecret enforces the strength policy for secrets sealing the
// phrase on disk.
func CheckStoreSecret(secret string) error {
	if !isSecureSecret(secret) {
		return ErrWeakSecret
	}
	return nil
}

// isSecureSecret enforces a basic strength policy.
func isSecureSecret(secret string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(secret) < minSecretLength {
		return false
	}
	for _, r := range secret {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}
