// Package store provides file-based persistence for the mnemonic phrase.
//
// The key core never touches disk; these stores are the collaborators that
// hand it a phrase. Both implement domain.PhraseStore over a YAML key-value
// document holding at least a "phrase" entry:
//   - PhraseFileStore writes the document in plain text.
//   - SealedPhraseStore seals the same document with scrypt and
//     XChaCha20-Poly1305 under a store secret. The scrypt
//     parameters, salt and nonce are authenticated with the ciphertext.
//
// Writes go through a temp file and rename, with mode 0600. All methods are
// concurrency-safe via internal locking.
package store
