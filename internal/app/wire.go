package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"keytree/internal/domain"
	"keytree/internal/services/account"
	"keytree/internal/services/identity"
	"keytree/internal/services/seed"
	"keytree/internal/store"
)

// Wire bundles the stores and services for the CLI.
type Wire struct {
	Config   Config
	Logger   *slog.Logger
	Phrases  domain.PhraseStore
	Seeds    *seed.Service
	Identity *identity.Service
}

// Options are the inputs to NewWire that do not come from the config file.
type Options struct {
	StoreSecret string    // required when Config.EncryptPhrase is set
	Rand        io.Reader // entropy for new mnemonics; nil means crypto/rand
	LogOutput   io.Writer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, opts Options) (*Wire, error) {
	logOut := opts.LogOutput
	if logOut == nil {
		logOut = os.Stderr
	}
	logger, err := NewLogger(cfg.Log, logOut)
	if err != nil {
		return nil, err
	}

	var phrases domain.PhraseStore
	if cfg.EncryptPhrase {
		if err := identity.CheckStoreSecret(opts.StoreSecret); err != nil {
			return nil, err
		}
		phrases = store.NewSealedPhraseStore(cfg.PhrasePath(), opts.StoreSecret)
	} else {
		phrases = store.NewPhraseFileStore(cfg.PhrasePath())
	}

	seedOpts := []seed.Option{seed.WithEntropyBits(cfg.MnemonicBits)}
	if opts.Rand != nil {
		seedOpts = append(seedOpts, seed.WithRand(opts.Rand))
	}
	seeds := seed.New(seedOpts...)

	return &Wire{
		Config:   cfg,
		Logger:   logger,
		Phrases:  phrases,
		Seeds:    seeds,
		Identity: identity.New(phrases, seeds, logger.With("component", "identity")),
	}, nil
}

// OpenAccount opens the account over the stored phrase.
func (w *Wire) OpenAccount(passphrase string) (*account.Service, error) {
	acct, err := w.Identity.OpenAccount(passphrase,
		account.WithNetwork(w.Config.Network),
		account.WithLogger(w.Logger.With("component", "account")),
	)
	if err != nil {
		return nil, fmt.Errorf("open account: %w", err)
	}
	return acct, nil
}
