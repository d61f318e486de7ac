package account

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"keytree/internal/crypto"
	"keytree/internal/domain"
	"keytree/internal/hdkey"
	"keytree/internal/services/exchange"
	"keytree/internal/services/signing"
	"keytree/internal/util/memzero"
)

var errNoSeed = errors.New("account requires a seed")

// Service exposes signing and exchange operations for one seed.
type Service struct {
	seed     *domain.Seed
	deriver  domain.PathDeriver
	signer   domain.SigningIdentity
	exchange domain.ExchangeIdentity
	network  domain.Network
	logger   *slog.Logger

	refs      atomic.Int64
	closeOnce sync.Once
}

// Option configures a Service.
type Option func(*Service)

// WithDeriver replaces the BIP32 path deriver.
func WithDeriver(d domain.PathDeriver) Option {
	return func(s *Service) { s.deriver = d }
}

// WithSigningIdentity replaces the signing capability.
func WithSigningIdentity(id domain.SigningIdentity) Option {
	return func(s *Service) { s.signer = id }
}

// WithExchangeIdentity replaces the exchange capability.
func WithExchangeIdentity(id domain.ExchangeIdentity) Option {
	return func(s *Service) { s.exchange = id }
}

// WithNetwork selects xpub or tpub serialization.
func WithNetwork(n domain.Network) Option {
	return func(s *Service) { s.network = n }
}

// WithLogger sets the logger. Paths and public fingerprints are logged at
// debug level; key material never is.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// New takes ownership of seed. The caller must not wipe or reuse it; Close
// wipes it once the last operation has finished.
func New(seed *domain.Seed, opts ...Option) (*Service, error) {
	if seed == nil || seed.Len() == 0 {
		return nil, errNoSeed
	}
	s := &Service{
		seed:     seed,
		deriver:  hdkey.NewDeriver(),
		signer:   signing.New(),
		exchange: exchange.New(),
		network:  domain.Mainnet,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.refs.Store(1)
	return s, nil
}

// FromMnemonic derives the seed for phrase and passphrase through src and
// wraps it in a Service.
func FromMnemonic(src domain.SeedSource, phrase, passphrase string, opts ...Option) (*Service, error) {
	seed, err := src.SeedFromMnemonic(phrase, passphrase)
	if err != nil {
		return nil, err
	}
	return New(seed, opts...)
}

// Sign signs msg with the signing key at path.
func (s *Service) Sign(path string, msg []byte) (domain.Signature, error) {
	pair, err := s.signingPair(path)
	if err != nil {
		return domain.Signature{}, err
	}
	defer memzero.Zero(pair.Private[:])

	sig, err := s.signer.Sign(pair.Private, msg)
	if err != nil {
		return domain.Signature{}, err
	}
	s.logger.Debug("message signed", "path", path, "key_fp", crypto.Fingerprint(pair.Public[:]).String())
	return sig, nil
}

// Verify recomputes the verification key at path and checks sig over msg.
func (s *Service) Verify(path string, msg, sig []byte) (bool, error) {
	pub, err := s.SigningKey(path)
	if err != nil {
		return false, err
	}
	ok, err := s.signer.Verify(pub, msg, sig)
	if err != nil {
		return false, err
	}
	s.logger.Debug("signature checked", "path", path, "valid", ok)
	return ok, nil
}

// SigningKey returns the verification key at path.
func (s *Service) SigningKey(path string) (domain.Secp256k1Public, error) {
	pair, err := s.signingPair(path)
	if err != nil {
		return domain.Secp256k1Public{}, err
	}
	memzero.Zero(pair.Private[:])
	return pair.Public, nil
}

// ExchangeKey returns the X25519 key pair at path. The caller owns the
// private half.
func (s *Service) ExchangeKey(path string) (domain.ExchangeKeyPair, error) {
	node, err := s.node(path)
	if err != nil {
		return domain.ExchangeKeyPair{}, err
	}
	defer node.Wipe()
	pair, err := s.exchange.KeyPair(node)
	if err != nil {
		return domain.ExchangeKeyPair{}, err
	}
	s.logger.Debug("exchange key derived", "path", path, "key_fp", crypto.FingerprintX25519(pair.Public).String())
	return pair, nil
}

// Agree derives the exchange key at path and agrees with peer.
func (s *Service) Agree(path string, peer domain.X25519Public) (domain.SharedSecret, error) {
	pair, err := s.ExchangeKey(path)
	if err != nil {
		return domain.SharedSecret{}, err
	}
	defer memzero.Zero(pair.Private[:])
	return s.exchange.Agree(pair.Private, peer)
}

// ExtendedPublicKey returns the serialized extended public key at path.
func (s *Service) ExtendedPublicKey(path string) (string, error) {
	node, err := s.node(path)
	if err != nil {
		return "", err
	}
	defer node.Wipe()
	return hdkey.SerializePublic(node, s.network)
}

// Close releases the owner's reference to the seed. It is idempotent.
func (s *Service) Close() error {
	s.closeOnce.Do(s.release)
	return nil
}

func (s *Service) signingPair(path string) (domain.SigningKeyPair, error) {
	node, err := s.node(path)
	if err != nil {
		return domain.SigningKeyPair{}, err
	}
	defer node.Wipe()
	return s.signer.KeyPair(node)
}

// node parses path and derives it while holding a seed reference.
func (s *Service) node(path string) (domain.ExtendedKey, error) {
	p, err := s.deriver.ParsePath(path)
	if err != nil {
		return domain.ExtendedKey{}, err
	}
	if err := s.acquire(); err != nil {
		return domain.ExtendedKey{}, err
	}
	defer s.release()

	node, err := s.deriver.Derive(s.seed, p)
	if err != nil {
		return domain.ExtendedKey{}, fmt.Errorf("derive %s: %w", p, err)
	}
	return node, nil
}

func (s *Service) acquire() error {
	for {
		n := s.refs.Load()
		if n <= 0 {
			return domain.ErrAccountClosed
		}
		if s.refs.CompareAndSwap(n, n+1) {
			return nil
		}
	}
}

func (s *Service) release() {
	if s.refs.Add(-1) == 0 {
		s.seed.Wipe()
		s.logger.Debug("seed wiped")
	}
}

// Compile-time assertion that Service implements domain.AccountService.
var _ domain.AccountService = (*Service)(nil)
