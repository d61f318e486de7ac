package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"keytree/internal/domain"
	"keytree/internal/store"
)

const phrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestPhraseFile_SaveLoad_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", store.DefaultPhraseFile)
	var ps domain.PhraseStore = store.NewPhraseFileStore(path)

	if err := ps.SavePhrase(phrase); err != nil {
		t.Fatalf("save phrase: %v", err)
	}
	got, ok, err := ps.LoadPhrase()
	if err != nil || !ok {
		t.Fatalf("load phrase: ok=%v err=%v", ok, err)
	}
	if got != phrase {
		t.Fatalf("phrase mismatch: %q", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
	}
	b, _ := os.ReadFile(path)
	if !strings.Contains(string(b), "strength: 12") {
		t.Fatalf("missing strength in %q", b)
	}
}

func TestPhraseFile_Missing_NotOK(t *testing.T) {
	ps := store.NewPhraseFileStore(filepath.Join(t.TempDir(), store.DefaultPhraseFile))
	got, ok, err := ps.LoadPhrase()
	if err != nil || ok || got != "" {
		t.Fatalf("got %q ok=%v err=%v", got, ok, err)
	}
}

func TestPhraseFile_EmptyPhrase_NotOK(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.DefaultPhraseFile)
	if err := os.WriteFile(path, []byte("phrase: \"  \"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := store.NewPhraseFileStore(path).LoadPhrase(); err != nil || ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
}

func TestPhraseFile_Garbage_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.DefaultPhraseFile)
	if err := os.WriteFile(path, []byte("phrase: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := store.NewPhraseFileStore(path).LoadPhrase(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPhraseFile_Overwrite_KeepsLatest(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.DefaultPhraseFile)
	ps := store.NewPhraseFileStore(path)
	if err := ps.SavePhrase("first"); err != nil {
		t.Fatal(err)
	}
	if err := ps.SavePhrase(phrase); err != nil {
		t.Fatal(err)
	}
	got, _, _ := ps.LoadPhrase()
	if got != phrase {
		t.Fatalf("got %q", got)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}
