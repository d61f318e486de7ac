package store

import (
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"keytree/internal/domain"
	"keytree/internal/util/memzero"
)

// DefaultSealedPhraseFile is the sealed phrase file name under the home directory.
const DefaultSealedPhraseFile = "phrase.yaml.enc"

// SealedPhraseStore keeps the phrase document encrypted under a secret.
// The plaintext is the same YAML document PhraseFileStore writes.
type SealedPhraseStore struct {
	path   string
	secret string
	mu     sync.Mutex
}

// NewSealedPhraseStore returns a SealedPhraseStore for the file at path.
func NewSealedPhraseStore(path, secret string) *SealedPhraseStore {
	return &SealedPhraseStore{path: path, secret: secret}
}

// LoadPhrase decrypts and reads the phrase; a missing file is ok=false.
func (s *SealedPhraseStore) LoadPhrase() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readIfExists(s.path)
	if err != nil || b == nil {
		return "", false, err
	}
	pt, err := open(s.secret, b)
	if err != nil {
		return "", false, err
	}
	defer memzero.Zero(pt)

	var doc phraseDoc
	if err := yaml.Unmarshal(pt, &doc); err != nil {
		return "", false, ErrWrongPassphrase
	}
	phrase := strings.TrimSpace(doc.Phrase)
	return phrase, phrase != "", nil
}

// SavePhrase seals and replaces the stored phrase.
func (s *SealedPhraseStore) SavePhrase(phrase string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := yaml.Marshal(phraseDoc{Phrase: phrase, Strength: len(strings.Fields(phrase))})
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)
	ct, err := seal(s.secret, raw, defaultKDF)
	if err != nil {
		return err
	}
	return replaceFile(s.path, ct, 0o600)
}

// Compile-time assertion that SealedPhraseStore implements domain.PhraseStore.
var _ domain.PhraseStore = (*SealedPhraseStore)(nil)
