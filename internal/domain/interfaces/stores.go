package interfaces

// PhraseStore persists the mnemonic phrase outside the core.
type PhraseStore interface {
	// LoadPhrase reports ok=false when nothing has been saved yet.
	LoadPhrase() (phrase string, ok bool, err error)
	SavePhrase(phrase string) error
}
