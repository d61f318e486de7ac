package store

import (
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"keytree/internal/domain"
)

// DefaultPhraseFile is the phrase file name under the home directory.
const DefaultPhraseFile = "phrase.yaml"

// phraseDoc is the on-disk key-value layout. Only phrase is required;
// strength records the word count for operators reading the file.
type phraseDoc struct {
	Phrase   string `yaml:"phrase"`
	Strength int    `yaml:"strength,omitempty"`
}

// PhraseFileStore keeps the mnemonic phrase in a plain YAML file.
type PhraseFileStore struct {
	path string
	mu   sync.Mutex
}

// NewPhraseFileStore returns a PhraseFileStore for the file at path.
func NewPhraseFileStore(path string) *PhraseFileStore {
	return &PhraseFileStore{path: path}
}

// LoadPhrase reads the phrase; a missing file or empty phrase is ok=false.
func (s *PhraseFileStore) LoadPhrase() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readIfExists(s.path)
	if err != nil || b == nil {
		return "", false, err
	}
	var doc phraseDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return "", false, fmt.Errorf("parse %s: %w", s.path, err)
	}
	phrase := strings.TrimSpace(doc.Phrase)
	return phrase, phrase != "", nil
}

// SavePhrase replaces the stored phrase.
func (s *PhraseFileStore) SavePhrase(phrase string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := yaml.Marshal(phraseDoc{Phrase: phrase, Strength: len(strings.Fields(phrase))})
	if err != nil {
		return err
	}
	return replaceFile(s.path, b, 0o600)
}

// Compile-time assertion that PhraseFileStore implements domain.PhraseStore.
var _ domain.PhraseStore = (*PhraseFileStore)(nil)
