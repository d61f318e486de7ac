package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"keytree/internal/domain"
	"keytree/internal/hdkey"
	"keytree/internal/services/seed"
	"keytree/internal/store"
)

// DefaultPath is the derivation path used when none is configured.
const DefaultPath = "m/44'/0'/0'/0/0'"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home          string         `yaml:"home"`          // config directory, e.g. $HOME/.keytree
	Network       domain.Network `yaml:"network"`       // mainnet | testnet
	MnemonicBits  int            `yaml:"mnemonic_bits"` // 128..256, steps of 32
	DefaultPath   string         `yaml:"default_path"`
	PhraseFile    string         `yaml:"phrase_file"`    // relative to Home unless absolute
	EncryptPhrase bool           `yaml:"encrypt_phrase"` // seal the phrase file with a store secret
	Log           LogConfig      `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig(home string) Config {
	return Config{
		Home:         home,
		Network:      domain.Mainnet,
		MnemonicBits: seed.DefaultEntropyBits,
		DefaultPath:  DefaultPath,
		Log:          LogConfig{Level: "warn", Format: "text"},
	}
}

// LoadConfig reads a YAML config at path over DefaultConfig(home). A missing
// file yields the defaults. Environment variables in the file are expanded.
func LoadConfig(path, home string) (Config, error) {
	cfg := DefaultConfig(home)
	if path == "" {
		return cfg, cfg.Validate()
	}
	// #nosec G304 -- path is operator-provided config path.
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, cfg.Validate()
	}
	if err != nil {
		return Config{}, err
	}

	expanded := os.ExpandEnv(string(raw))
	expanded = strings.ReplaceAll(expanded, "\r\n", "\n")
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("home is required")
	}
	switch c.Network {
	case domain.Mainnet, domain.Testnet:
	default:
		return fmt.Errorf("network must be %q or %q, got %q", domain.Mainnet, domain.Testnet, c.Network)
	}
	if !seed.ValidEntropyBits(c.MnemonicBits) {
		return fmt.Errorf("mnemonic_bits must be 128..256 in steps of 32, got %d", c.MnemonicBits)
	}
	if _, err := hdkey.ParsePath(c.DefaultPath); err != nil {
		return fmt.Errorf("default_path: %w", err)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// PhrasePath resolves the phrase file location.
func (c Config) PhrasePath() string {
	name := c.PhraseFile
	if name == "" {
		name = store.DefaultPhraseFile
		if c.EncryptPhrase {
			name = store.DefaultSealedPhraseFile
		}
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Home, name)
}
