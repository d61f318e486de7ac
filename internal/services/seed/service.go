package seed

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"

	"keytree/internal/domain"
	domaintypes "keytree/internal/domain/types"
	"keytree/internal/util/memzero"
)

// DefaultEntropyBits yields a 24-word phrase.
const DefaultEntropyBits = 256

// Service generates mnemonics and derives seeds from them.
type Service struct {
	rand io.Reader
	bits int
}

// Option configures a Service.
type Option func(*Service)

// WithRand sets the entropy source used by NewMnemonic.
func WithRand(r io.Reader) Option {
	return func(s *Service) { s.rand = r }
}

// WithEntropyBits sets the entropy size: 128, 160, 192, 224 or 256 bits
// (12 to 24 words).
func WithEntropyBits(bits int) Option {
	return func(s *Service) { s.bits = bits }
}

// New returns a Service reading entropy from crypto/rand unless overridden.
func New(opts ...Option) *Service {
	s := &Service{rand: rand.Reader, bits: DefaultEntropyBits}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewMnemonic returns a fresh phrase encoding entropy read from the
// configured source.
func (s *Service) NewMnemonic() (string, error) {
	if !ValidEntropyBits(s.bits) {
		return "", fmt.Errorf("entropy must be 128..256 bits in steps of 32, got %d", s.bits)
	}
	entropy := make([]byte, s.bits/8)
	defer memzero.Zero(entropy)
	if _, err := io.ReadFull(s.rand, entropy); err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}
	return bip39.NewMnemonic(entropy)
}

// SeedFromMnemonic validates phrase and derives its BIP39 seed under
// passphrase. An empty passphrase is the BIP39 default.
func (s *Service) SeedFromMnemonic(phrase, passphrase string) (*domain.Seed, error) {
	raw, err := bip39.NewSeedWithErrorChecking(NormalizePhrase(phrase), norm.NFKD.String(passphrase))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMnemonic, err)
	}
	defer memzero.Zero(raw)
	return domaintypes.NewSeed(raw)
}

// ValidateMnemonic reports whether phrase has a valid length, words and
// checksum.
func (s *Service) ValidateMnemonic(phrase string) bool {
	return bip39.IsMnemonicValid(NormalizePhrase(phrase))
}

// NormalizePhrase applies NFKD and collapses whitespace runs.
func NormalizePhrase(phrase string) string {
	return strings.Join(strings.Fields(norm.NFKD.String(phrase)), " ")
}

// WordCount returns the number of words in phrase.
func WordCount(phrase string) int {
	return len(strings.Fields(phrase))
}

// ValidEntropyBits reports whether bits is a BIP39 entropy size.
func ValidEntropyBits(bits int) bool {
	return bits >= 128 && bits <= 256 && bits%32 == 0
}

// Compile-time assertion that Service implements domain.SeedSource.
var _ domain.SeedSource = (*Service)(nil)
