package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"kiib/internal/domain"
)

const (
	credFilename    = "credentials.json"
	credEncFilename = "credentials.enc"
)

// CredentialFileStore persists the bearer credential to disk under a home
// directory, the CLI analogue of the browser's local storage. With a
// non-empty passphrase the credential is sealed in a scrypt-derived
// chacha20poly1305 envelope instead of plain JSON.
type CredentialFileStore struct {
	dir        string
	passphrase string
	mu         sync.Mutex
}

// NewCredentialFileStore returns a plaintext credential store rooted at dir.
func NewCredentialFileStore(dir string) *CredentialFileStore {
	return &CredentialFileStore{dir: dir}
}

// NewEncryptedCredentialFileStore returns a credential store rooted at dir
// that seals the credential with the given passphrase.
func NewEncryptedCredentialFileStore(dir, passphrase string) *CredentialFileStore {
	return &CredentialFileStore{dir: dir, passphrase: passphrase}
}

// SaveCredential stores the credential, replacing any previous one in
// either on-disk form.
func (s *CredentialFileStore) SaveCredential(cred domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(cred)
	if err != nil {
		return err
	}
	if s.passphrase == "" {
		_ = os.Remove(filepath.Join(s.dir, credEncFilename))
		return writeFile(filepath.Join(s.dir, credFilename), raw, 0o600)
	}
	N, r, p := scryptParamsDefault()
	ct, err := encrypt(s.passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	_ = os.Remove(filepath.Join(s.dir, credFilename))
	return writeFile(filepath.Join(s.dir, credEncFilename), ct, 0o600)
}

// LoadCredential returns the stored credential, if any. A missing
// credential is not an error; an unreadable or undecryptable one is.
func (s *CredentialFileStore) LoadCredential() (domain.Credential, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, credFilename)
	if s.passphrase != "" {
		path = filepath.Join(s.dir, credEncFilename)
	}
	raw, err := readFile(path)
	if err != nil {
		return domain.Credential{}, false, err
	}
	if raw == nil {
		return domain.Credential{}, false, nil
	}
	if s.passphrase != "" {
		raw, err = decrypt(s.passphrase, raw)
		if err != nil {
			return domain.Credential{}, false, err
		}
	}
	var cred domain.Credential
	if err := json.Unmarshal(raw, &cred); err != nil {
		return domain.Credential{}, false, err
	}
	if cred.AccessToken == "" {
		return domain.Credential{}, false, nil
	}
	return cred, true, nil
}

// ClearCredential removes the stored credential in both on-disk forms.
// Clearing an absent credential is a no-op.
func (s *CredentialFileStore) ClearCredential() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{credFilename, credEncFilename} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Compile-time assertion that CredentialFileStore implements domain.CredentialStore.
var _ domain.CredentialStore = (*CredentialFileStore)(nil)
